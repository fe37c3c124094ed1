package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ViewOverride customizes one registered list view.
// Zero values leave the view's own setting in place.
type ViewOverride struct {
	PageSize      int                    `koanf:"page_size"`
	SearchKey     string                 `koanf:"search_key"`
	FilterOptions []FilterOptionOverride `koanf:"filter_options"`
}

// FilterOptionOverride is one entry of a view's filter dropdown.
type FilterOptionOverride struct {
	Value string `koanf:"value"`
	Label string `koanf:"label"`
}

// viewsFile is the layout of VIEWS_FILE:
//
//	views:
//	  applicants:
//	    page_size: 25
//	    search_key: email
//	    filter_options:
//	      - {value: pending, label: Pending}
type viewsFile struct {
	Views map[string]ViewOverride `koanf:"views"`
}

// LoadViewOverrides reads per-view overrides from a YAML file.
// An empty path yields no overrides.
func LoadViewOverrides(path string) (map[string]ViewOverride, error) {
	if path == "" {
		return nil, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load views file %s: %w", path, err)
	}

	var vf viewsFile
	if err := k.Unmarshal("", &vf); err != nil {
		return nil, fmt.Errorf("parse views file %s: %w", path, err)
	}

	for key, o := range vf.Views {
		if o.PageSize < 0 {
			return nil, fmt.Errorf("views file %s: %s.page_size must be positive", path, key)
		}
		for i, fo := range o.FilterOptions {
			if fo.Value == "" {
				return nil, fmt.Errorf("views file %s: %s.filter_options[%d] has no value", path, key, i)
			}
		}
	}

	return vf.Views, nil
}
