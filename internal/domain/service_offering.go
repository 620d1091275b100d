package domain

// ServiceOffering is a static catalog entry shown on the services page.
type ServiceOffering struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"desc" yaml:"desc"`
	Icon        string `json:"icon" yaml:"icon"`
}
