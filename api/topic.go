package api

type Topic string

const (
	DirectoryChanged      Topic = "event-directory-changed"
	ImagesUpdated         Topic = "event-images-updated"
	ThumbnailDecoded      Topic = "event-thumbnail-decoded"
	ThumbnailDecodeFailed Topic = "event-thumbnail-decode-failed"
	ThumbnailSizeChanged  Topic = "event-thumbnail-size-changed"
	ThumbnailSizeRequest  Topic = "event-thumbnail-size-request"
	ImageSelected         Topic = "event-image-selected"
	ActionRequested       Topic = "event-action-requested"
	ProcessStatusUpdated  Topic = "event-process-status-updated"
	ShowError             Topic = "event-show-error"
)
