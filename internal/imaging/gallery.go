package imaging

import "deli-admin/internal/model"

// MaxGallerySize is the most images a page gallery may hold.
const MaxGallerySize = 6

// CheckCapacity reports whether one more image fits.
func CheckCapacity(urls []string) error {
	if len(urls) >= MaxGallerySize {
		return model.ErrGalleryFull
	}
	return nil
}

// AppendURL returns a new list with url added at the end.
func AppendURL(urls []string, url string) ([]string, error) {
	if err := CheckCapacity(urls); err != nil {
		return urls, err
	}
	out := make([]string, 0, len(urls)+1)
	out = append(out, urls...)
	return append(out, url), nil
}

// RemoveAt returns a new list without the entry at index, order preserved.
// The stored object is left in place.
func RemoveAt(urls []string, index int) ([]string, error) {
	if index < 0 || index >= len(urls) {
		return urls, model.ErrGalleryIndex
	}
	out := make([]string, 0, len(urls)-1)
	out = append(out, urls[:index]...)
	return append(out, urls[index+1:]...), nil
}
