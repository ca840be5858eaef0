// Package loggen produces synthetic log corpora in the exact line shape the
// analyzer ingests. Used for demos and test fixtures.
package loggen

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"
)

var levels = []string{"INFO", "WARNING", "ERROR"}

var messages = []string{
	"User 'admin' logged in successfully.",
	"Disk usage at 85% on /dev/sda1.",
	"Failed to connect to database 'inventory'.",
	"Scheduled backup completed in 32.4 seconds.",
	"Unexpected end of file while reading config.yaml.",
	"CPU temperature high (87C).",
	"User 'guest' requested resource /public/info.",
	"Service 'nginx' restarted successfully.",
	"Permission denied accessing /var/www/html.",
	"Low memory detected: only 512MB free.",
	"Backup failed: insufficient disk space.",
	"Configuration file /etc/app/config.yaml updated.",
	"Database 'users' synchronized successfully.",
}

// Options controls the generated corpus.
type Options struct {
	// Lines is the number of log records to emit.
	Lines int
	// Sources is the size of the source address pool (192.168.1.10 + i).
	Sources int
	// Start is the timestamp of the first record; records advance by up to
	// a minute each.
	Start time.Time
	// Seed fixes the random stream for reproducible corpora.
	Seed int64
}

func (o Options) withDefaults() Options {
	if o.Lines <= 0 {
		o.Lines = 1000
	}
	if o.Sources <= 0 {
		o.Sources = 20
	}
	if o.Start.IsZero() {
		o.Start = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return o
}

// Write emits opts.Lines records to w, one per line, in the form
// "YYYY-MM-DD HH:MM:SS,fff [LEVEL] <address> <message>".
func Write(w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	rng := rand.New(rand.NewSource(opts.Seed))
	bw := bufio.NewWriter(w)

	ts := opts.Start
	for i := 0; i < opts.Lines; i++ {
		ts = ts.Add(time.Duration(rng.Intn(60000)) * time.Millisecond)
		level := levels[rng.Intn(len(levels))]
		addr := fmt.Sprintf("192.168.1.%d", 10+rng.Intn(opts.Sources))
		msg := messages[rng.Intn(len(messages))]

		stamp := ts.Format("2006-01-02 15:04:05,000")
		if _, err := fmt.Fprintf(bw, "%s [%s] %s %s\n", stamp, level, addr, msg); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes a generated corpus to path, truncating any existing file.
func WriteFile(path string, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
