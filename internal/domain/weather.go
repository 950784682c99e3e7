package domain

// WeatherReport is a prefecture-level forecast overview from the JMA feed.
type WeatherReport struct {
	Area             string `json:"area"`
	AreaCode         string `json:"area_code"`
	PublishingOffice string `json:"publishing_office"`
	ReportDatetime   string `json:"report_datetime"`
	Headline         string `json:"headline,omitempty"`
	Text             string `json:"text"`
	TextTranslated   string `json:"text_translated,omitempty"`
}
