// internal/workers/visual/creative-director/models.go
package creativedirector

import "magnet-factory/internal/models"

const (
	PlatformLinkedIn  = "linkedin"
	PlatformInstagram = "instagram"
	PlatformTwitter   = "twitter"
)

var platformSizes = map[string]string{
	PlatformLinkedIn:  models.SizeSquare,
	PlatformInstagram: models.SizeSquare,
	PlatformTwitter:   models.SizeLandscape,
}

func sizeFor(platform string) string {
	if size, ok := platformSizes[platform]; ok {
		return size
	}
	return models.SizeSquare
}

func intPtr(v int) *int {
	return &v
}
