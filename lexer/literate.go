package lexer

import "strings"

// StripLiterate converts literate-style source (prose by default, code
// only on lines indented at least four spaces or a tab) into ordinary
// source: code lines are de-indented by the literate margin, everything
// else becomes a line comment so prose never reaches the scanner as code
// (a supplemented feature beyond the distilled core spec, following the
// same convention CoffeeScript's .litcoffee mode uses).
func StripLiterate(source string) string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "    "):
			lines[i] = line[4:]
		case strings.HasPrefix(line, "\t"):
			lines[i] = line[1:]
		case strings.TrimSpace(line) == "":
			// blank prose line, leave as-is
		default:
			lines[i] = "# " + line
		}
	}
	return strings.Join(lines, "\n")
}
