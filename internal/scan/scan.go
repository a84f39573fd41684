package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/qiangli/polyglot/internal/log"
)

// FileContent is a scanned file and its text.
type FileContent struct {
	Path    string
	Content string
}

// Folders walks each folder recursively and returns the files whose extension
// is one of extensions. A leading dot on an extension is optional.
// Results follow the folder order, then path order within a folder.
func Folders(logger log.Logger, folders, extensions []string) ([]FileContent, error) {
	pattern := Pattern(extensions)
	if pattern == "" {
		return nil, nil
	}

	var files []FileContent
	var totalSize int64
	for _, folder := range folders {
		matches, err := doublestar.Glob(os.DirFS(folder), pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrapf(err, "scan %s", folder)
		}
		sort.Strings(matches)

		for _, m := range matches {
			path, err := filepath.Abs(filepath.Join(folder, filepath.FromSlash(m)))
			if err != nil {
				return nil, errors.Wrapf(err, "resolve %s", m)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, errors.Wrapf(err, "read %s", path)
			}
			logger.Info("%s : %s\n", filepath.Base(path), kb(int64(len(data))))

			totalSize += int64(len(data))
			files = append(files, FileContent{
				Path:    path,
				Content: string(data),
			})
		}
	}

	logger.Info("TOTAL files: %d size: %s\n", len(files), kb(totalSize))
	return files, nil
}

// Pattern builds the doublestar pattern matching any of the extensions at any depth.
func Pattern(extensions []string) string {
	var exts []string
	for _, v := range extensions {
		v = strings.TrimPrefix(strings.TrimSpace(v), ".")
		if v != "" {
			exts = append(exts, v)
		}
	}
	switch len(exts) {
	case 0:
		return ""
	case 1:
		return "**/*." + exts[0]
	default:
		return "**/*.{" + strings.Join(exts, ",") + "}"
	}
}

// ExpandMasks resolves folder masks such as "src-*" to existing directories.
func ExpandMasks(logger log.Logger, masks []string) ([]string, error) {
	var folders []string
	for _, mask := range masks {
		matches, err := doublestar.FilepathGlob(mask)
		if err != nil {
			return nil, errors.Wrapf(err, "folder mask %q", mask)
		}
		sort.Strings(matches)
		for _, m := range matches {
			fi, err := os.Stat(m)
			if err != nil || !fi.IsDir() {
				logger.Debug("skip %s: not a directory\n", m)
				continue
			}
			folders = append(folders, m)
		}
	}
	logger.Info("Scan folder masks %d %q -> folders %d %q\n", len(masks), masks, len(folders), folders)
	return folders, nil
}

func kb(size int64) string {
	return fmt.Sprintf("%.1fKb", float64(size)/1024.0)
}
