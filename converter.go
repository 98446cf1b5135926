// converter.go
// One-shot converters between naming conventions. Each converter is total
// over any input and returns its argument unchanged when it already matches
// the target convention.
package namecleaner

import "github.com/baditaflorin/go_name_cleaner/internal/core/convert"

// CamelToSnake converts camelCase to snake_case.
//
//	CamelToSnake("myVariableName") // "my_variable_name"
func CamelToSnake(name string) string {
	return convert.CamelToSnake(name)
}

// PascalToSnake converts PascalCase to snake_case.
func PascalToSnake(name string) string {
	return convert.PascalToSnake(name)
}

// SnakeToCamel converts snake_case to camelCase.
//
//	SnakeToCamel("my_variable_name") // "myVariableName"
func SnakeToCamel(name string) string {
	return convert.SnakeToCamel(name)
}

// SnakeToPascal converts snake_case to PascalCase.
func SnakeToPascal(name string) string {
	return convert.SnakeToPascal(name)
}

// TitleToSnake converts space-delimited Title Case to snake_case.
func TitleToSnake(name string) string {
	return convert.TitleToSnake(name)
}

// TitleToCamel converts space-delimited Title Case to camelCase.
func TitleToCamel(name string) string {
	return convert.TitleToCamel(name)
}

// TitleToPascal converts space-delimited Title Case to PascalCase.
func TitleToPascal(name string) string {
	return convert.TitleToPascal(name)
}
