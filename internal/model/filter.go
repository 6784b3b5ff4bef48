package model

type FilterCategory struct {
	Name    string   `json:"name" yaml:"name"`
	Options []string `json:"options" yaml:"options"`
}
