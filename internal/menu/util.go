package menu

import "strings"

func itemSuffix(id, prefix string) string {
	if !strings.HasPrefix(id, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(id, prefix))
}
