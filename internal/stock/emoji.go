package stock

// FruitEmojis maps exact fruit names to the glyph shown in front of them.
var FruitEmojis = map[string]string{
	"Rocket-Rocket":       "🚀",
	"Spin-Spin":           "🌀",
	"Blade-Blade":         "🗡️",
	"Sand-Sand":           "⏳",
	"Ice-Ice":             "🧊",
	"Eagle-Eagle":         "🦅",
	"Rubber-Rubber":       "🎈",
	"Spike-Spike":         "🌵",
	"Bomb-Bomb":           "💣",
	"Flame-Flame":         "🔥",
	"Spring-Spring":       "🌸",
	"Diamond-Diamond":     "💎",
	"Smoke-Smoke":         "💨",
	"Dark-Dark":           "🌑",
	"Light-Light":         "💡",
	"Ghost-Ghost":         "👻",
	"Magma-Magma":         "🌋",
	"Quake-Quake":         "🌊",
	"Buddha-Buddha":       "🧘",
	"Love-Love":           "💘",
	"Creation-Creation":   "🧱",
	"Spider-Spider":       "🕷️",
	"Sound-Sound":         "🎵",
	"Phoenix-Phoenix":     "🐦‍🔥",
	"Lightning-Lightning": "⚡",
	"Rumble-Rumble":       "⚡",
	"Pain-Pain":           "🩸",
	"Blizzard-Blizzard":   "❄️",
	"Gravity-Gravity":     "🪐",
	"Mammoth-Mammoth":     "🦣",
	"T-Rex-T-Rex":         "🦖",
	"Dough-Dough":         "🍩",
	"Shadow-Shadow":       "👤",
	"Venom-Venom":         "🐍",
	"Control-Control":     "🎛️",
	"Gas-Gas":             "☁️",
	"Spirit-Spirit":       "🕯️",
	"Leopard-Leopard":     "🐆",
	"Yeti-Yeti":           "🐻‍❄️",
	"Kitsune-Kitsune":     "🦊",
	"Dragon-Dragon":       "🐉",
	"Portal-Portal":       "🌌",
}
