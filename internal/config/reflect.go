package config

import "reflect"

// structToMap flattens a leaf config section into a mapstructure-tag-keyed
// map of its current values, used only to seed viper defaults from
// Default()'s struct literals.
func structToMap(section any) map[string]any {
	out := map[string]any{}
	v := reflect.ValueOf(section)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			tag = field.Name
		}
		out[tag] = v.Field(i).Interface()
	}
	return out
}
