// Package modules contains the application's page modules. Each module owns
// one URL prefix and is mounted by the server through the module.Module
// lifecycle (Register, Boot, Shutdown).
package modules
