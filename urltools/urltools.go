// Package urltools classifies input locations: local files versus
// network streams.
package urltools

import (
	"net/url"
)

// IsFileURL reports whether urlString refers to a local file (a plain
// path or a file:// URL).
func IsFileURL(urlString string) bool {
	u, err := url.Parse(urlString)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "file", "":
		return true
	case "rtmp", "rtmps", "srt", "udp", "tcp", "http", "https", "rtsp", "webrtc":
		return false
	default:
		// e.g. "C:\foo.png" is parsed with the scheme "c"
		return len(u.Scheme) == 1
	}
}

// FilePath returns the local path of a file URL.
func FilePath(urlString string) string {
	u, err := url.Parse(urlString)
	if err != nil || u.Scheme != "file" {
		return urlString
	}
	return u.Path
}

// InputFormatNameFromURL returns the demuxer for raw network streams
// whose format cannot be detected before data arrives; empty if libav
// should detect the format itself.
func InputFormatNameFromURL(urlString string) string {
	u, err := url.Parse(urlString)
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "rtmp", "rtmps":
		return "flv"
	case "srt", "udp", "tcp":
		return "mpegts"
	default:
		return ""
	}
}
