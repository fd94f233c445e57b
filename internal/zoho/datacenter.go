package zoho

import "strings"

// DataCenter describes one geographic Zoho deployment: every service family
// has its own base URL, and tokens issued by one data center only work
// against that data center's URLs.
type DataCenter struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Accounts  string `json:"accounts"`
	API       string `json:"api"`
	Meeting   string `json:"meeting"`
	Learn     string `json:"learn"`
	Mail      string `json:"mail"`
	WorkDrive string `json:"workdrive"`
}

var dataCenters = map[string]DataCenter{
	"us": {
		Code:      "us",
		Name:      "United States",
		Accounts:  "https://accounts.zoho.com",
		API:       "https://www.zohoapis.com",
		Meeting:   "https://meeting.zoho.com",
		Learn:     "https://learn.zoho.com",
		Mail:      "https://mail.zoho.com",
		WorkDrive: "https://www.zohoapis.com",
	},
	"eu": {
		Code:      "eu",
		Name:      "Europe",
		Accounts:  "https://accounts.zoho.eu",
		API:       "https://www.zohoapis.eu",
		Meeting:   "https://meeting.zoho.eu",
		Learn:     "https://learn.zoho.eu",
		Mail:      "https://mail.zoho.eu",
		WorkDrive: "https://www.zohoapis.eu",
	},
	"in": {
		Code:      "in",
		Name:      "India",
		Accounts:  "https://accounts.zoho.in",
		API:       "https://www.zohoapis.in",
		Meeting:   "https://meeting.zoho.in",
		Learn:     "https://learn.zoho.in",
		Mail:      "https://mail.zoho.in",
		WorkDrive: "https://www.zohoapis.in",
	},
	"au": {
		Code:      "au",
		Name:      "Australia",
		Accounts:  "https://accounts.zoho.com.au",
		API:       "https://www.zohoapis.com.au",
		Meeting:   "https://meeting.zoho.com.au",
		Learn:     "https://learn.zoho.com.au",
		Mail:      "https://mail.zoho.com.au",
		WorkDrive: "https://www.zohoapis.com.au",
	},
	"jp": {
		Code:      "jp",
		Name:      "Japan",
		Accounts:  "https://accounts.zoho.jp",
		API:       "https://www.zohoapis.jp",
		Meeting:   "https://meeting.zoho.jp",
		Learn:     "https://learn.zoho.jp",
		Mail:      "https://mail.zoho.jp",
		WorkDrive: "https://www.zohoapis.jp",
	},
	"ca": {
		Code:      "ca",
		Name:      "Canada",
		Accounts:  "https://accounts.zohocloud.ca",
		API:       "https://www.zohoapis.ca",
		Meeting:   "https://meeting.zohocloud.ca",
		Learn:     "https://learn.zohocloud.ca",
		Mail:      "https://mail.zohocloud.ca",
		WorkDrive: "https://www.zohoapis.ca",
	},
}

// DataCenterByCode looks up a data center by its short code,
// case-insensitively. The second return is false for unknown codes;
// callers fall back to their configured default.
func DataCenterByCode(code string) (DataCenter, bool) {
	dc, ok := dataCenters[strings.ToLower(strings.TrimSpace(code))]
	return dc, ok
}

// DataCenterCodes returns the supported codes, for diagnostics and tests.
func DataCenterCodes() []string {
	codes := make([]string, 0, len(dataCenters))
	for code := range dataCenters {
		codes = append(codes, code)
	}
	return codes
}
