package i18n

// Translator resolves interface strings for the two supported languages,
// English and Albanian. Unknown keys fall back to the key itself so a
// missing entry never blanks out a page.
type Translator struct {
	tables map[string]map[string]string
}

func NewTranslator() *Translator {
	return &Translator{tables: translations}
}

// Supported reports whether lang has a translation table.
func (t *Translator) Supported(lang string) bool {
	_, ok := t.tables[lang]
	return ok
}

// T resolves key in lang, falling back to English and then to the key.
func (t *Translator) T(lang, key string) string {
	if table, ok := t.tables[lang]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	if v, ok := t.tables["en"][key]; ok {
		return v
	}
	return key
}

// Table returns the whole table for lang so templates can look keys up
// without going through the usecase layer.
func (t *Translator) Table(lang string) map[string]string {
	if table, ok := t.tables[lang]; ok {
		return table
	}
	return t.tables["en"]
}

var translations = map[string]map[string]string{
	"en": {
		"pricing":       "Pricing",
		"tools":         "Tools",
		"help":          "Help",
		"signIn":        "Sign In",
		"createAccount": "Create Account",

		"heroTitle":       "Reassemble a long video into",
		"heroSubtitle":    "Engaging Shorts",
		"heroDescription": "Turn your long videos into viral short form clips and get millions of views",
		"makeShorts":      "Make Shorts",

		"keyFeatures":      "Key features for Clippers",
		"featuresSubtitle": "Transform your content into viral-ready clips with our AI-powered tools",

		"autoClipping":     "Auto Clipping",
		"autoClippingDesc": "AI automatically detects viral-worthy moments in your videos and turns them into perfect clips",

		"autoFaceTracking":     "Auto Face Tracking",
		"autoFaceTrackingDesc": "AI detects faces in your video and keeps them centered as it converts to vertical formats",

		"autoCaptioning":     "Auto Captioning",
		"autoCaptioningDesc": "AI listens to your video and automatically adds captions",

		"captionTranslation":     "Caption Translation",
		"captionTranslationDesc": "Translate your captions into 37+ languages instantly",

		"login":           "Login",
		"register":        "Register",
		"email":           "Email",
		"password":        "Password",
		"username":        "Username",
		"confirmPassword": "Confirm Password",

		"dashboard":    "Dashboard",
		"myClips":      "My Clips",
		"createNew":    "Create New Clip",
		"youtubeUrl":   "YouTube URL",
		"pasteUrl":     "Paste YouTube video URL here...",
		"getVideoInfo": "Get Video Info",

		"adminPanel":     "Admin Panel",
		"userManagement": "User Management",
		"totalUsers":     "Total Users",
		"totalClips":     "Total Clips",

		"cancel":  "Cancel",
		"save":    "Save",
		"delete":  "Delete",
		"edit":    "Edit",
		"loading": "Loading...",
		"error":   "Error",
		"success": "Success",
	},
	"sq": {
		"pricing":       "Çmimi",
		"tools":         "Mjete",
		"help":          "Ndihmë",
		"signIn":        "Hyr",
		"createAccount": "Krijo Llogari",

		"heroTitle":       "Riorganizo një video të gjatë në",
		"heroSubtitle":    "Klipe Tërheqëse",
		"heroDescription": "Ktheni videot tuaja të gjata në klipe të shkurtra virale dhe merrni miliona shikime",
		"makeShorts":      "Bëj Klipe",

		"keyFeatures":      "Karakteristika kryesore për Kliper",
		"featuresSubtitle": "Transformoni përmbajtjen tuaj në klipe gati për viralitet me mjetet tona të fuqizuara nga AI",

		"autoClipping":     "Klipim Automatik",
		"autoClippingDesc": "AI zbuloi automatikisht momentet e vlefshme virale në videot tuaja dhe i kthen ato në klipe të përsosura",

		"autoFaceTracking":     "Gjurmim Automatik i Fytyrës",
		"autoFaceTrackingDesc": "AI zbuloi fytyrat në videon tuaj dhe i mban ato të centruara ndërsa konverton në formate vertikale",

		"autoCaptioning":     "Titrim Automatik",
		"autoCaptioningDesc": "AI dëgjon videon tuaj dhe shton automatikisht titrat",

		"captionTranslation":     "Përkthim Titrash",
		"captionTranslationDesc": "Përktheni titrat tuaja në 37+ gjuhë menjëherë",

		"login":           "Hyrje",
		"register":        "Regjistrohu",
		"email":           "Email-i",
		"password":        "Fjalëkalimi",
		"username":        "Emri i përdoruesit",
		"confirmPassword": "Konfirmo Fjalëkalimin",

		"dashboard":    "Paneli",
		"myClips":      "Klipet e Mia",
		"createNew":    "Krijo Klip të Ri",
		"youtubeUrl":   "YouTube URL",
		"pasteUrl":     "Ngjit URL-në e videos së YouTube këtu...",
		"getVideoInfo": "Merr Informacion Video",

		"adminPanel":     "Paneli i Administratorit",
		"userManagement": "Menaxhimi i Përdoruesve",
		"totalUsers":     "Përdorues Gjithsej",
		"totalClips":     "Klipe Gjithsej",

		"cancel":  "Anulo",
		"save":    "Ruaj",
		"delete":  "Fshi",
		"edit":    "Ndrysho",
		"loading": "Duke u ngarkuar...",
		"error":   "Gabim",
		"success": "Sukses",
	},
}
