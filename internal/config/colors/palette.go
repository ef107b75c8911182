package colors

// Kanagawa palette used by the dragon, lotus and wave presets
const (
	// Wave (dark)
	sumiInk3     = "#1F1F28"
	sumiInk4     = "#2A2A37"
	sumiInk6     = "#54546D"
	waveBlue1    = "#223249"
	waveBlue2    = "#2D4F67"
	winterBlue   = "#252535"
	winterYellow = "#49443C"
	winterRed    = "#43242B"
	fujiWhite    = "#DCD7BA"
	fujiGray     = "#727169"
	oldWhite     = "#C8C093"
	oniViolet    = "#957FB8"
	crystalBlue  = "#7E9CD8"
	springBlue   = "#7FB4CA"
	springGreen  = "#98BB6C"
	autumnRed    = "#C34043"
	samuraiRed   = "#E82424"
	roninYellow  = "#FF9E3B"
	carpYellow   = "#E6C384"
	waveAqua2    = "#7AA89F"
	dragonBlue   = "#658594"

	// Dragon (dark, warm)
	dragonBlack3 = "#181616"
	dragonBlack4 = "#282727"
	dragonBlack6 = "#625E5A"
	dragonWhite  = "#C5C9C5"
	dragonAsh    = "#737C73"
	dragonGray   = "#A6A69C"
	dragonGreen2 = "#8A9A7B"
	dragonRed    = "#C4746E"
	dragonYellow = "#C4B28A"
	dragonBlue2  = "#8BA4B0"
	dragonViolet = "#8992A7"
	dragonAqua   = "#8EA4A2"

	// Lotus (light)
	lotusInk1    = "#545464"
	lotusGray2   = "#716E61"
	lotusGray3   = "#8A8980"
	lotusWhite3  = "#F2ECBC"
	lotusViolet4 = "#624C83"
	lotusBlue1   = "#C7D7E0"
	lotusBlue4   = "#4D699B"
	lotusGreen   = "#6F894E"
	lotusRed     = "#C84053"
	lotusYellow3 = "#DE9800"
	lotusCyan    = "#D7E3D8"
	lotusTeal1   = "#4E8CA2"
	lotusRed4    = "#D9A594"
	lotusYellow4 = "#F9D791"
)
