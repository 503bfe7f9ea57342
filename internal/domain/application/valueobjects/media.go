package valueobjects

// MediaKind is the transport-level type of an attachment.
type MediaKind string

const (
	MediaKindPhoto    MediaKind = "photo"
	MediaKindVideo    MediaKind = "video"
	MediaKindDocument MediaKind = "document"
	MediaKindSticker  MediaKind = "sticker"
	MediaKindText     MediaKind = "text"
)

var validMediaKinds = map[MediaKind]bool{
	MediaKindPhoto:    true,
	MediaKindVideo:    true,
	MediaKindDocument: true,
	MediaKindSticker:  true,
	MediaKindText:     true,
}

func (k MediaKind) IsValid() bool {
	return validMediaKinds[k]
}

func (k MediaKind) String() string {
	return string(k)
}

// MediaCategory is the form step an attachment was collected in.
type MediaCategory string

const (
	CategoryGeneral MediaCategory = "general"
	CategorySkin    MediaCategory = "skin"
	CategoryProject MediaCategory = "project"
)

var validMediaCategories = map[MediaCategory]bool{
	CategoryGeneral: true,
	CategorySkin:    true,
	CategoryProject: true,
}

// Attachment caps per category. Zero means unlimited.
var mediaCategoryCaps = map[MediaCategory]int{
	CategorySkin:    2,
	CategoryProject: 5,
}

func (c MediaCategory) IsValid() bool {
	return validMediaCategories[c]
}

// Cap returns the maximum number of attachments for the category,
// or 0 when the category is uncapped.
func (c MediaCategory) Cap() int {
	return mediaCategoryCaps[c]
}

func (c MediaCategory) String() string {
	return string(c)
}
