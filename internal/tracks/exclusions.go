package tracks

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// LoadExcludedIDs reads the flat, line-oriented exclusion list written by
// the availability checker. A missing file means nothing is excluded; a
// malformed line is a data error, not something to skip silently.
func LoadExcludedIDs(path string) (map[int64]struct{}, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[int64]struct{}), nil
		}
		return nil, fmt.Errorf("open exclusion list %s: %w", path, err)
	}
	defer file.Close()

	ids := make(map[int64]struct{})
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		id, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("exclusion list %s line %d: %w", path, line, err)
		}
		ids[id] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read exclusion list %s: %w", path, err)
	}
	return ids, nil
}
