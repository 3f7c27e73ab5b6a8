// Package audio pronounces Italian text during drills. Audio comes
// from Google Translate's TTS endpoint (free, no API key needed),
// cached on disk, and played through whatever command-line player the
// host has.
package audio

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Speaker pronounces a piece of Italian text. Implementations must
// not block: drills call Say on the UI path.
type Speaker interface {
	Say(text string)
}

// Nop is a Speaker that stays silent.
type Nop struct{}

func (Nop) Say(string) {}

const ttsRequestTimeout = 10 * time.Second

// players are tried in order; the first one present on PATH wins.
var players = [][]string{
	{"mpg123", "-q"},
	{"mpv", "--really-quiet"},
	{"afplay"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
}

// TTS fetches and caches pronunciation audio and plays it in the
// background. Fetch or playback failures are logged and dropped so a
// missing player or offline host never interrupts a drill.
type TTS struct {
	cacheDir string
	lang     string
	player   []string
}

// NewTTS creates a TTS speaker caching under cacheDir. It returns an
// error only when no audio player is available.
func NewTTS(cacheDir string) (*TTS, error) {
	player, err := findPlayer()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio cache dir: %w", err)
	}
	return &TTS{cacheDir: cacheDir, lang: "it", player: player}, nil
}

// FromEnv builds the best available Speaker: Nop when PAROLA_NO_AUDIO
// is set or no player exists, TTS otherwise.
func FromEnv() Speaker {
	if os.Getenv("PAROLA_NO_AUDIO") != "" {
		return Nop{}
	}
	cache, err := os.UserCacheDir()
	if err != nil {
		return Nop{}
	}
	tts, err := NewTTS(filepath.Join(cache, "parola", "audio"))
	if err != nil {
		return Nop{}
	}
	return tts
}

// Say pronounces text asynchronously.
func (t *TTS) Say(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	go func() {
		path, err := t.fetch(text)
		if err != nil {
			log.Printf("audio: %v", err)
			return
		}
		args := append(append([]string(nil), t.player[1:]...), path)
		if err := exec.Command(t.player[0], args...).Run(); err != nil {
			log.Printf("audio: playback failed: %v", err)
		}
	}()
}

// fetch returns the cached MP3 path for text, downloading it on a
// cache miss.
func (t *TTS) fetch(text string) (string, error) {
	sanitized := strings.ToLower(text)
	sanitized = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, sanitized)
	path := filepath.Join(t.cacheDir, fmt.Sprintf("%s_%s.mp3", t.lang, sanitized))

	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := t.download(text, path); err != nil {
		return "", err
	}
	return path, nil
}

// download uses Google Translate's text-to-speech endpoint.
func (t *TTS) download(text, outputPath string) error {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", t.lang)
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))
	fullURL := "https://translate.google.com/translate_tts?" + params.Encode()

	ctx, cancel := context.WithTimeout(context.Background(), ttsRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	// Google rejects requests without a browser user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	client := &http.Client{Timeout: ttsRequestTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	tmp := outputPath + ".tmp"
	outFile, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if _, err := io.Copy(outFile, resp.Body); err != nil {
		outFile.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	if err := outFile.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, outputPath)
}

func findPlayer() ([]string, error) {
	for _, p := range players {
		if _, err := exec.LookPath(p[0]); err == nil {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no audio player found (tried mpg123, mpv, afplay, ffplay)")
}
