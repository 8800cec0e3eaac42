package resolve

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"

	"cssc/config"
)

// buildOutputPath expands the output name template and turns the result into
// a usable file path: segments are cleaned up and, when requested,
// transliterated, the format extension goes on last so cleanup cannot mangle
// it. The expanded name may contain path separators for subdirectories.
func buildOutputPath(tmplText string, values Values, transliterate bool) (string, error) {
	expanded, err := expandTemplate(config.OutputNameTemplateFieldName, tmplText, values)
	if err != nil {
		return "", err
	}

	// volume and root survive cleanup untouched
	path := filepath.FromSlash(expanded)
	root := filepath.VolumeName(path)
	path = strings.TrimPrefix(path, root)
	if strings.HasPrefix(path, string(os.PathSeparator)) {
		root += string(os.PathSeparator)
	}

	segments := splitAndCleanPath(path)
	if len(segments) == 0 {
		return "", errors.New("output name template expanded to nothing")
	}

	fileName := strings.TrimSuffix(segments[len(segments)-1], values.Ext)
	fileName = cleanPathSegment(fileName, transliterate) + values.Ext

	parts := make([]string, 0, len(segments)+1)
	if len(root) > 0 {
		parts = append(parts, root)
	}
	for _, segment := range segments[:len(segments)-1] {
		parts = append(parts, cleanPathSegment(segment, transliterate))
	}
	parts = append(parts, fileName)
	return filepath.Join(parts...), nil
}

func splitAndCleanPath(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		segments = slices.Insert(segments, 0, tail)
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" {
			break
		}
		path = head
	}

	return segments
}

func cleanPathSegment(segment string, transliterate bool) string {
	if transliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
