package layouts

// SiteName is the application name shown when a page has no title.
const SiteName = "Фудграм"

// CalculateTitle handles the conditional logic for the page title.
// Page titles are used as-is; an empty title falls back to the site name.
func CalculateTitle(title string) string {
	if title != "" {
		return title
	}
	return SiteName
}
