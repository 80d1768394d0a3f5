package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "auto_wait"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return 1000
			case "max_wait_seconds":
				return DefaultMaxWaitSeconds
			case "since_days":
				return DefaultSinceDays
			default:
				return 3
			}
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "api_url":
			return "https://api.github.com"
		case "branch":
			return DefaultBranch
		case "repo":
			return DefaultRepo
		default:
			return "example"
		}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			if fieldName == "targets" {
				return []string{"2.5", "2.4"}
			}
			return []string{"example1", "example2"}
		}
	}

	return nil
}
