package content

// MeetingLink points at a fellowship's meeting directory.
type MeetingLink struct {
	Name         string
	Description  string
	Link         string
	Instructions string
}

var MeetingLinks = []MeetingLink{
	{
		Name:         "Alcoholics Anonymous (AA)",
		Description:  "Find local, in-person, or online AA meetings.",
		Link:         "https://www.aa.org/find-meetings",
		Instructions: "The official AA website provides local directories and search tools.",
	},
	{
		Name:         "Narcotics Anonymous (NA)",
		Description:  "Find local and online NA meetings.",
		Link:         "https://www.na.org/meetingsearch/",
		Instructions: "Use the NA Meeting Locator to find times and locations in your area.",
	},
	{
		Name:         "Cocaine Anonymous (CA)",
		Description:  "Find CA meetings globally.",
		Link:         "https://www.ca.org/meetings/",
		Instructions: "The CA website offers a global directory and online meeting resources.",
	},
}
