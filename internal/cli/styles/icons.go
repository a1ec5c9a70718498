package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconSend    = "\uf1d8" // paper plane
	IconKey     = "\uf084" // key
	IconTab     = "\uf0ce" // table
	IconClock   = "\uf017" // clock
	IconCursor  = "\uf054" // chevron-right
)
