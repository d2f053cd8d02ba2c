package compose

import (
	"strings"

	"github.com/spigell/jobfit/internal/textnorm"
)

// LeakWindow is the run of consecutive words that counts as copying the posting.
const LeakWindow = 10

// Guard drops items that repeat LeakWindow or more consecutive words of the
// job text.
func Guard(items []string, jobText string) []string {
	shingles := windows(textnorm.Words(jobText))
	if len(shingles) == 0 {
		return items
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if leaks(item, shingles) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func windows(words []string) map[string]struct{} {
	if len(words) < LeakWindow {
		return nil
	}
	set := make(map[string]struct{}, len(words)-LeakWindow+1)
	for i := 0; i+LeakWindow <= len(words); i++ {
		set[strings.Join(words[i:i+LeakWindow], " ")] = struct{}{}
	}
	return set
}

func leaks(item string, shingles map[string]struct{}) bool {
	words := textnorm.Words(item)
	for i := 0; i+LeakWindow <= len(words); i++ {
		if _, ok := shingles[strings.Join(words[i:i+LeakWindow], " ")]; ok {
			return true
		}
	}
	return false
}
