package moderation

type ModerationContainer struct {
	Handler   *Handler
	Moderator *Moderator
}

func NewModerationContainer() *ModerationContainer {
	moderator := NewModerator()
	handler := NewHandler(moderator)

	return &ModerationContainer{
		Handler:   handler,
		Moderator: moderator,
	}
}
