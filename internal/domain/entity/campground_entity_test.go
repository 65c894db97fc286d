package entity

import "testing"

func TestImageThumbnail(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{
			"transformable url",
			"https://res.example.com/upload/v1/abc.jpg",
			"https://res.example.com/upload/w_200/v1/abc.jpg",
		},
		{
			"plain object url unchanged",
			"https://storage.googleapis.com/bucket/campgrounds/abc.jpg",
			"https://storage.googleapis.com/bucket/campgrounds/abc.jpg",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img := Image{URL: tc.url}
			if got := img.Thumbnail(); got != tc.want {
				t.Fatalf("Thumbnail() = %q, want %q", got, tc.want)
			}
		})
	}
}
