package classify

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category names the destination folder a file is sorted into. The type
// categories are derived from the file extension; OldFiles is derived from
// the modification time and takes precedence over all of them.
type Category string

const (
	Documents   Category = "Documents"
	Images      Category = "Images"
	Audio       Category = "Audio"
	Video       Category = "Video"
	Archives    Category = "Archives"
	Code        Category = "Code"
	Executables Category = "Executables"
	Other       Category = "Other"
	OldFiles    Category = "Old Files"
)

// TypeCategories returns the extension-derived categories in display order.
func TypeCategories() []Category {
	return []Category{Documents, Images, Audio, Video, Archives, Code, Executables, Other}
}

// Folders returns every folder name the organizer may create under the
// target directory.
func Folders() []string {
	categories := TypeCategories()
	names := make([]string, 0, len(categories)+1)
	for _, c := range categories {
		names = append(names, string(c))
	}
	return append(names, string(OldFiles))
}

var defaultExtensions = map[string]Category{
	"pdf":  Documents,
	"docx": Documents,
	"txt":  Documents,
	"doc":  Documents,
	"rtf":  Documents,
	"odt":  Documents,
	"xlsx": Documents,
	"xls":  Documents,
	"pptx": Documents,
	"ppt":  Documents,
	"csv":  Documents,

	"jpg":  Images,
	"jpeg": Images,
	"png":  Images,
	"gif":  Images,
	"bmp":  Images,
	"tiff": Images,
	"svg":  Images,
	"webp": Images,

	"mp3":  Audio,
	"wav":  Audio,
	"aac":  Audio,
	"flac": Audio,
	"ogg":  Audio,
	"m4a":  Audio,

	"mp4":  Video,
	"avi":  Video,
	"mkv":  Video,
	"mov":  Video,
	"wmv":  Video,
	"flv":  Video,
	"webm": Video,

	"zip": Archives,
	"rar": Archives,
	"7z":  Archives,
	"tar": Archives,
	"gz":  Archives,
	"bz2": Archives,

	"py":   Code,
	"java": Code,
	"html": Code,
	"css":  Code,
	"js":   Code,
	"php":  Code,
	"c":    Code,
	"cpp":  Code,
	"h":    Code,
	"rb":   Code,
	"json": Code,
	"xml":  Code,

	"exe": Executables,
	"msi": Executables,
	"app": Executables,
	"dmg": Executables,
	"deb": Executables,
	"rpm": Executables,
}

var categoryTitler = cases.Title(language.Und)

// ParseCategory resolves a user-supplied category name to a known type
// category, folding case so "documents" and "DOCUMENTS" both resolve.
// OldFiles is not a valid target: it is age-derived, never extension-derived.
func ParseCategory(name string) (Category, error) {
	folded := Category(categoryTitler.String(strings.ToLower(strings.TrimSpace(name))))
	for _, c := range TypeCategories() {
		if folded == c {
			return c, nil
		}
	}
	if folded == OldFiles {
		return "", fmt.Errorf("category %q is age-derived and cannot be assigned to an extension", name)
	}
	return "", fmt.Errorf("unknown category %q", name)
}
