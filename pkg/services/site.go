package services

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"marinelle/pkg/models"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

func DefaultSite() models.Site {
	return models.Site{
		Name:         "Ristorante Pizzeria Le Marinelle",
		Tagline:      "Accogliente e professionale, con veranda e giardino. Pesce fresco, carne selezionata e pizze a lunga lievitazione cotte in forno a legna.",
		Phone:        "+393407040530",
		PhoneDisplay: "+39 340 704 0530",
		Email:        "info@ristorantepizzerialemarinelle.it",
		Address:      "Via Marinelle 1, Termoli (CB)",
		City:         "Termoli",
		Hours:        "Aperto a pranzo e cena",
		MenuURL:      "#menu",
		SceneURL:     "https://prod.spline.design/xzUirwcZB9SOxUWt/scene.splinecode",
		MapQuery:     "Via Marinelle 1, Termoli (CB)",
		Features: []string{
			"Pesce fresco",
			"Carne selezionata",
			"Pizze al forno a legna a lunga lievitazione",
			"Friggitoria",
			"Buffet ed eventi",
		},
		Specialties: []models.Specialty{
			{Icon: "fish", Title: "Pesce Fresco", Description: "Selezione quotidiana dal mare Adriatico."},
			{Icon: "drumstick", Title: "Carne", Description: "Tagli scelti e cotture perfette."},
			{Icon: "pizza", Title: "Pizze", Description: "Lievitazione lunga e forno a legna."},
		},
	}
}

// LoadSite reads a site definition and overlays it on DefaultSite.
// The format follows the file extension: .yaml/.yml, .toml or .json.
func LoadSite(path string) (models.Site, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.Site{}, err
	}
	override, err := ParseSite(content, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
	if err != nil {
		return models.Site{}, fmt.Errorf("site %s: %w", path, err)
	}
	return MergeSite(DefaultSite(), override), nil
}

func ParseSite(content []byte, format string) (models.Site, error) {
	var site models.Site
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(content, &site); err != nil {
			return site, err
		}
	case "toml":
		if err := toml.Unmarshal(content, &site); err != nil {
			return site, err
		}
	case "json":
		if err := json.Unmarshal(content, &site); err != nil {
			return site, err
		}
	default:
		return site, fmt.Errorf("unsupported format: %s", format)
	}
	return site, nil
}

// MergeSite returns base with every non-empty field of override applied.
func MergeSite(base, override models.Site) models.Site {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&base.Name, override.Name)
	set(&base.Tagline, override.Tagline)
	set(&base.Phone, override.Phone)
	set(&base.PhoneDisplay, override.PhoneDisplay)
	set(&base.Email, override.Email)
	set(&base.Address, override.Address)
	set(&base.City, override.City)
	set(&base.Hours, override.Hours)
	set(&base.MenuURL, override.MenuURL)
	set(&base.SceneURL, override.SceneURL)
	set(&base.MapQuery, override.MapQuery)
	if len(override.Features) > 0 {
		base.Features = override.Features
	}
	if len(override.Specialties) > 0 {
		base.Specialties = override.Specialties
	}
	return base
}

func MapEmbedURL(site models.Site) string {
	q := url.Values{}
	q.Set("q", site.MapQuery)
	q.Set("output", "embed")
	return "https://www.google.com/maps?" + q.Encode()
}
