// Package validator provides the issue and result types shared by skill
// validation and its reporting.
//
//   - [Severity]: distinguishes blocking errors from warnings and notes.
//   - [Issue]: one problem, optionally tied to a frontmatter field.
//   - [Result]: the issues found for one subject (a skill directory).
//   - [Reporter]: renders results as colored text or JSON.
//
// # Basic Usage
//
//	result := validator.NewResult(dir)
//	if name == "" {
//		result.AddError("name", "name is required", nil)
//	}
//	if result.HasErrors() {
//		// handle validation failure
//	}
package validator
