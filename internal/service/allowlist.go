package service

import "strings"

type AllowList map[string]struct{}

// ParseAllowList builds an allow-list from a comma-separated value.
// Entries are trimmed and blanks are skipped.
func ParseAllowList(raw string) AllowList {
	list := AllowList{}
	list.add(strings.Split(raw, ",")...)
	return list
}

func (l AllowList) add(plates ...string) {
	for _, p := range plates {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		l[p] = struct{}{}
	}
}

func (l AllowList) Contains(plate string) bool {
	if plate == "" {
		return false
	}
	_, ok := l[plate]
	return ok
}
