// Package fetch retrieves remote datafiles so the rest of the tool can
// treat every input as a local path.
package fetch

import (
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/jlaffaye/ftp"
)

const dialTimeout = 30 * time.Second

// IsRemote reports whether the datafile argument names an FTP URL
// rather than a local path.
func IsRemote(datafile string) bool {
	u, err := url.Parse(datafile)
	return err == nil && u.Scheme == "ftp"
}

// Datafile downloads an ftp:// URL into cacheDir and returns the local
// path. An already-downloaded file is reused. One attempt only; any
// failure is fatal to the run, so there is no retry here.
func Datafile(rawURL, cacheDir string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme != "ftp" || u.Host == "" || u.Path == "" {
		return "", fmt.Errorf("invalid ftp url %q", rawURL)
	}

	local := filepath.Join(cacheDir, path.Base(u.Path))
	if _, err := os.Stat(local); err == nil {
		log.Printf("using cached datafile %s", local)
		return local, nil
	}
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	host := u.Host
	if u.Port() == "" {
		host += ":21"
	}

	conn, err := ftp.Dial(host, ftp.DialWithTimeout(dialTimeout))
	if err != nil {
		return "", fmt.Errorf("ftp dial %s: %w", host, err)
	}
	defer conn.Quit()

	user, pass := "anonymous", "anonymous"
	if u.User != nil {
		user = u.User.Username()
		if p, ok := u.User.Password(); ok {
			pass = p
		}
	}
	if err := conn.Login(user, pass); err != nil {
		return "", fmt.Errorf("ftp login: %w", err)
	}

	resp, err := conn.Retr(u.Path)
	if err != nil {
		return "", fmt.Errorf("ftp retr %s: %w", u.Path, err)
	}
	defer resp.Close()

	tmp := local + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", tmp, err)
	}
	n, err := io.Copy(f, resp)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("download %s: %w", rawURL, err)
	}
	if err := os.Rename(tmp, local); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("finalize %s: %w", local, err)
	}

	log.Printf("downloaded %s (%d bytes) to %s", rawURL, n, local)
	return local, nil
}
