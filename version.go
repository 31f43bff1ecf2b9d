package main

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// versionPattern matches dotted-numeric versions with at least two
// components: "1.2", "1.2.3", "0.48.0.1". A bare "7" is not a version.
var versionPattern = regexp.MustCompile(`^\d+(?:\.\d+)+$`)

func normalizeVersion(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "v")
}

func validVersion(v string) bool {
	return versionPattern.MatchString(v)
}

// compareVersions compares two dotted-numeric versions component-wise.
// When one is a prefix of the other, the longer one is greater, so
// "1.2.0" sorts above "1.2".
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, _ := strconv.Atoi(as[i])
		bn, _ := strconv.Atoi(bs[i])
		if an != bn {
			if an < bn {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	}
	return 0
}

// sortedVersionsDesc returns the row keys newest-first.
func sortedVersionsDesc(rows map[string]Row) []string {
	versions := make([]string, 0, len(rows))
	for v := range rows {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool {
		return compareVersions(versions[i], versions[j]) > 0
	})
	return versions
}
