package config

// UploadConfig - ограничения для загружаемых файлов в конкретном контексте.
type UploadConfig struct {
	AllowedMimeTypes []string
	MaxSizeMB        int64
}

var UploadContexts = map[string]UploadConfig{
	// Прайс договора в формате xlsx (zip-контейнер)
	"price_sheet": {
		AllowedMimeTypes: []string{
			"application/zip",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		},
		MaxSizeMB: 5,
	},
}
