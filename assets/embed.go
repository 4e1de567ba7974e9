package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed easy.txt medium.txt hard.txt stages.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// WordList returns the embedded list for a tier name ("easy", "medium", "hard").
func WordList(tier string) ([]string, error) {
	return readLines(tier + ".txt")
}

// StageList returns the embedded failure-stage identifiers in reveal order.
func StageList() ([]string, error) {
	return readLines("stages.txt")
}
