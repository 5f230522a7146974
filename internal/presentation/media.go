package presentation

import (
	"path"
	"strings"
)

// MediaKind - тип вложения для отображения
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

var mediaKinds = map[string]MediaKind{
	".jpeg": MediaImage,
	".jpg":  MediaImage,
	".png":  MediaImage,
	".webp": MediaImage,
	".mp4":  MediaVideo,
	".mov":  MediaVideo,
}

// Buckets - вложения, разложенные по типам
type Buckets struct {
	Images []string `json:"images"`
	Videos []string `json:"videos"`
}

// MediaItem - элемент последовательности показа
type MediaItem struct {
	Name string    `json:"name"`
	Kind MediaKind `json:"kind"`
	URL  string    `json:"url,omitempty"`
}

// KindOf определяет тип по суффиксу имени файла
func KindOf(filename string) (MediaKind, bool) {
	kind, ok := mediaKinds[strings.ToLower(path.Ext(filename))]
	return kind, ok
}

// Classify раскладывает имена файлов на изображения и видео.
// Нераспознанные расширения отбрасываются, порядок внутри корзин сохраняется.
func Classify(filenames []string) Buckets {
	buckets := Buckets{Images: []string{}, Videos: []string{}}
	for _, name := range filenames {
		kind, ok := KindOf(name)
		if !ok {
			continue
		}
		switch kind {
		case MediaImage:
			buckets.Images = append(buckets.Images, name)
		case MediaVideo:
			buckets.Videos = append(buckets.Videos, name)
		}
	}
	return buckets
}

// Sequence строит последовательность показа в исходном порядке
func Sequence(baseURL string, filenames []string) []MediaItem {
	items := make([]MediaItem, 0, len(filenames))
	for _, name := range filenames {
		kind, ok := KindOf(name)
		if !ok {
			continue
		}
		item := MediaItem{Name: name, Kind: kind}
		if baseURL != "" {
			item.URL = MediaURL(baseURL, name)
		}
		items = append(items, item)
	}
	return items
}

// MediaURL возвращает адрес файла в медиа-хранилище API
func MediaURL(baseURL, name string) string {
	return strings.TrimRight(baseURL, "/") + "/media/" + strings.TrimLeft(name, "/")
}

// AssetURL возвращает адрес ресурса, путь к которому сервер отдает относительно корня API
func AssetURL(baseURL, assetPath string) string {
	if assetPath == "" {
		return ""
	}
	if strings.HasPrefix(assetPath, "http://") || strings.HasPrefix(assetPath, "https://") {
		return assetPath
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(assetPath, "/")
}
