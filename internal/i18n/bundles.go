package i18n

// bundles holds the per-language key/value tables. English is also the
// fallback: keys missing from a bundle resolve to the caller-supplied
// canonical text.
var bundles = map[string]map[string]string{
	"en": {
		"actions.water.name":            "Water",
		"actions.water.description":     "Give the plant a thorough watering.",
		"actions.fertilize.name":        "Fertilize",
		"actions.fertilize.description": "Feed the plant with its fertilizer.",

		"weather.sunny":        "Sunny",
		"weather.sunnyTip":     "Strong sun today. Check soil moisture on exposed plants.",
		"weather.rainy":        "Rainy",
		"weather.rainyTip":     "Rain covers most watering needs today. Watch for waterlogging.",
		"weather.hot":          "Hot",
		"weather.hotTip":       "Heat dries soil fast. Water in the morning or evening.",
		"weather.cold":         "Cold",
		"weather.coldTip":      "Move sensitive plants away from cold drafts.",
		"weather.temperate":    "Mild",
		"weather.temperateTip": "Good conditions. Follow the regular care schedule.",

		"dashboard.todaysCare":    "Today's Care",
		"dashboard.noPlants":      "You haven't added any plants yet.",
		"dashboard.addPlants":     "Add Plants",
		"dashboard.allCaredFor":   "All plants are cared for!",
		"dashboard.checkTomorrow": "Check back tomorrow for new care tasks.",
		"dashboard.weatherTips":   "Weather Tips",

		"detail.addToGarden":      "Add to My Garden",
		"detail.removeFromGarden": "Remove from My Garden",
		"detail.careHistory":      "Care History",
		"detail.careInstructions": "Care Instructions",
		"detail.inGarden":         "In your garden",
		"detail.notInGarden":      "Not in your garden. Press 'a' to add.",
		"detail.since":            "since",
		"detail.watering":         "Watering",
		"detail.light":            "Light",
		"detail.fertilizer":       "Fertilizer",
		"detail.height":           "Height",
		"detail.temperature":      "Temperature",
		"detail.loading":          "Loading plant...",
		"detail.empty":            "No plant selected",

		"settings.title":          "Settings",
		"settings.notifications":  "Care Reminders",
		"settings.reminderTime":   "Reminder Time",
		"settings.darkMode":       "Dark Mode",
		"settings.language":       "Language",
		"settings.refreshWeather": "Refresh Weather Data",
		"settings.resetData":      "Reset App Data",
		"settings.resetConfirm":   "Delete all plants, history and settings?",
		"settings.on":             "On",
		"settings.off":            "Off",

		"advice.title":   "Daily Advice",
		"advice.loading": "Asking the garden assistant...",
		"advice.noKey":   "No API key configured. Store one with the 'key' command.",

		"remind.careDue": "Your plants need care today",
	},
	"id": {
		"plants.names.rose":        "Mawar",
		"plants.names.sunflower":   "Bunga Matahari",
		"plants.names.jasmine":     "Melati",
		"plants.names.peace-lily":  "Lili Perdamaian",
		"plants.names.snake-plant": "Lidah Mertua",
		"plants.names.aloe-vera":   "Lidah Buaya",
		"plants.names.basil":       "Kemangi",
		"plants.names.lavender":    "Lavender",

		"plants.wateringFrequency.low":    "jarang",
		"plants.wateringFrequency.medium": "sedang",
		"plants.wateringFrequency.high":   "sering",

		"plants.lightPreference.full sun":    "matahari penuh",
		"plants.lightPreference.partial sun": "matahari sebagian",
		"plants.lightPreference.shade":       "teduh",

		"actions.water.name":            "Siram",
		"actions.water.description":     "Siram tanaman sampai merata.",
		"actions.fertilize.name":        "Pupuk",
		"actions.fertilize.description": "Beri tanaman pupuk sesuai jenisnya.",

		"weather.sunny":        "Cerah",
		"weather.sunnyTip":     "Matahari kuat hari ini. Periksa kelembapan tanah tanaman di luar.",
		"weather.rainy":        "Hujan",
		"weather.rainyTip":     "Hujan memenuhi kebutuhan penyiraman hari ini. Hindari genangan air.",
		"weather.hot":          "Panas",
		"weather.hotTip":       "Panas mengeringkan tanah dengan cepat. Siram pagi atau sore hari.",
		"weather.cold":         "Dingin",
		"weather.coldTip":      "Jauhkan tanaman sensitif dari udara dingin.",
		"weather.temperate":    "Sejuk",
		"weather.temperateTip": "Kondisi baik. Ikuti jadwal perawatan seperti biasa.",

		"dashboard.todaysCare":    "Perawatan Hari Ini",
		"dashboard.noPlants":      "Anda belum menambahkan tanaman.",
		"dashboard.addPlants":     "Tambah Tanaman",
		"dashboard.allCaredFor":   "Semua tanaman sudah terawat!",
		"dashboard.checkTomorrow": "Periksa kembali besok untuk tugas perawatan baru.",
		"dashboard.weatherTips":   "Tips Cuaca",

		"detail.addToGarden":      "Tambahkan ke Kebun Saya",
		"detail.removeFromGarden": "Hapus dari Kebun Saya",
		"detail.careHistory":      "Riwayat Perawatan",
		"detail.careInstructions": "Petunjuk Perawatan",
		"detail.inGarden":         "Ada di kebun Anda",
		"detail.notInGarden":      "Belum ada di kebun Anda. Tekan 'a' untuk menambahkan.",
		"detail.since":            "sejak",
		"detail.watering":         "Penyiraman",
		"detail.light":            "Cahaya",
		"detail.fertilizer":       "Pupuk",
		"detail.height":           "Tinggi",
		"detail.temperature":      "Suhu",
		"detail.loading":          "Memuat tanaman...",
		"detail.empty":            "Tidak ada tanaman yang dipilih",

		"settings.title":          "Pengaturan",
		"settings.notifications":  "Pengingat Perawatan",
		"settings.reminderTime":   "Waktu Pengingat",
		"settings.darkMode":       "Mode Gelap",
		"settings.language":       "Bahasa",
		"settings.refreshWeather": "Perbarui Data Cuaca",
		"settings.resetData":      "Atur Ulang Data Aplikasi",
		"settings.resetConfirm":   "Hapus semua tanaman, riwayat, dan pengaturan?",
		"settings.on":             "Aktif",
		"settings.off":            "Nonaktif",

		"advice.title":   "Saran Harian",
		"advice.loading": "Meminta saran asisten kebun...",
		"advice.noKey":   "Belum ada kunci API. Simpan dengan perintah 'key'.",

		"remind.careDue": "Tanaman Anda perlu dirawat hari ini",
	},
}
