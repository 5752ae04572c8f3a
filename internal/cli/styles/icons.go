package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconFolder  = "\uf07b" // folder
	IconCursor  = "\uf054" // chevron-right
	IconTrash   = "\uf1f8" // trash
	IconBell    = "\uf0f3" // bell
	IconActive  = "\uf111" // filled circle
	IconArrowUp = "\uf062" // arrow up
	IconArrowDn = "\uf063" // arrow down
)
