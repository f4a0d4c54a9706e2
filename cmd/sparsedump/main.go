// Command sparsedump reads a file and prints the text dump (see
// sparsevector.WriteDump) of the SparseVector[byte] formed by its
// non-zero byte runs, treating 0x00 as void.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/akmistry/go-util/bufferpool"

	"github.com/akmistry/sparsevector"
)

var (
	verboseFlag   = flag.Bool("verbose", false, "Verbose logging")
	chunkSizeFlag = flag.Int("chunk-size", 64*1024, "Read chunk size in bytes")
)

func main() {
	flag.Parse()

	if *verboseFlag {
		slog.SetDefault(slog.New(slog.NewTextHandler(
			os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if flag.NArg() != 1 {
		log.Print("Usage: sparsedump <FILE>")
		os.Exit(1)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	sv, err := buildFromNonZeroRuns(f, *chunkSizeFlag)
	if err != nil {
		log.Fatal(err)
	}

	slog.Debug("built sparse vector", "size", sv.Size(), "ranges", sv.NumRanges(), "count", sv.Count())

	if err := sparsevector.WriteDump(os.Stdout, sv); err != nil {
		log.Fatal(err)
	}
}

// buildFromNonZeroRuns scans r in chunks, pooling the read buffer, and
// feeds each maximal run of non-zero bytes into the vector via AddRange.
func buildFromNonZeroRuns(r *os.File, chunkSize int) (*sparsevector.SparseVector[byte], error) {
	sv := sparsevector.New[byte](0)

	buf := bufferpool.GetBuffer(chunkSize)
	defer bufferpool.PutBuffer(buf)
	chunk := buf.AvailableBuffer()[:chunkSize]

	offset := 0
	runStart := -1
	var run []byte
	flushRun := func() {
		if runStart >= 0 {
			sv.AddRange(runStart, run)
			runStart = -1
			run = nil
		}
	}

	for {
		n, err := r.Read(chunk)
		for i := 0; i < n; i++ {
			if chunk[i] == 0 {
				flushRun()
			} else {
				if runStart < 0 {
					runStart = offset + i
				}
				run = append(run, chunk[i])
			}
		}
		offset += n
		if err != nil {
			flushRun()
			if errors.Is(err, io.EOF) {
				return sv, nil
			}
			return sv, err
		}
	}
}
