package infra

import "strings"

// CodigoINVIMA resolves the sanitary registration code printed in the manifest
// header. The code only exists when every line of the guia carries the same
// species; a mixed or unrecognized load has no single code and falls back to
// "N/A".
func CodigoINVIMA(especies []string) string {
	if len(especies) == 0 {
		return "N/A"
	}
	uniq := make(map[string]struct{}, 1)
	for _, e := range especies {
		uniq[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	if len(uniq) != 1 {
		return "N/A"
	}
	for e := range uniq {
		switch e {
		case "bovino", "bovinos":
			return "567 B"
		case "porcino", "porcinos":
			return "150 P"
		}
	}
	return "N/A"
}
