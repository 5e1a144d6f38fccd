package processor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"codeberg.org/snonux/phonewords/internal/archive"
	"codeberg.org/snonux/phonewords/internal/batch"
	"codeberg.org/snonux/phonewords/internal/cli"
	"codeberg.org/snonux/phonewords/internal/dictionary"
	"codeberg.org/snonux/phonewords/internal/output"
	"codeberg.org/snonux/phonewords/internal/translator"
)

// Stats summarizes a run.
type Stats struct {
	Numbers        int
	Translations   int
	Untranslatable int
}

// Processor handles the main translation run
type Processor struct {
	flags  *cli.Flags
	logger *slog.Logger
}

// NewProcessor creates a new processor
func NewProcessor(flags *cli.Flags, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Processor{
		flags:  flags,
		logger: logger,
	}
}

// Run loads the dictionary once, then translates every line of the
// phone-number file in order, writing each translation to stdout and, when
// configured, to the results database.
func (p *Processor) Run(dictionaryFile, numbersFile string, stdout io.Writer) (Stats, error) {
	var stats Stats

	index, err := dictionary.Load(dictionaryFile, dictionary.WithFolding(!p.flags.NoFold))
	if err != nil {
		return stats, err
	}
	p.logger.Info("dictionary loaded",
		slog.String("file", dictionaryFile),
		slog.Int("words", index.Len()),
		slog.Int("signatures", index.Signatures()),
	)

	if _, err := os.Stat(numbersFile); err != nil {
		return stats, fmt.Errorf("failed to open phone numbers: %w", err)
	}

	sink, err := p.openSinks(dictionaryFile, numbersFile, stdout)
	if err != nil {
		return stats, err
	}

	t := translator.New(index, translator.DigitsAfterShortWords(p.flags.DigitsAfterShortWords))
	runErr := batch.EachLine(numbersFile, func(number string) error {
		stats.Numbers++
		found := 0
		for tr := range t.Translate(number) {
			found++
			res := output.Result{Line: stats.Numbers, Index: found, Translation: tr}
			if err := sink.Write(res); err != nil {
				return err
			}
		}

		stats.Translations += found
		if found == 0 {
			stats.Untranslatable++
		}
		p.logger.Debug("number translated",
			slog.Int("line", stats.Numbers),
			slog.String("number", number),
			slog.Int("translations", found),
		)
		return nil
	})

	if runErr != nil {
		return stats, errors.Join(runErr, sink.Abort())
	}
	if err := sink.Close(); err != nil {
		return stats, err
	}

	p.logger.Info("run complete",
		slog.Int("numbers", stats.Numbers),
		slog.Int("translations", stats.Translations),
		slog.Int("untranslatable", stats.Untranslatable),
	)
	return stats, nil
}

func (p *Processor) openSinks(dictionaryFile, numbersFile string, stdout io.Writer) (output.Sink, error) {
	sinks := output.Multi{output.NewTextSink(stdout, p.flags.Separator)}
	if p.flags.DBPath == "" {
		return sinks, nil
	}

	if p.flags.Archive {
		archived, err := archive.ArchiveFile(p.flags.DBPath)
		switch {
		case errors.Is(err, archive.ErrNotExist):
			p.logger.Debug("nothing to archive", slog.String("db", p.flags.DBPath))
		case err != nil:
			return nil, err
		default:
			p.logger.Info("results database archived", slog.String("to", archived))
		}
	}

	db, err := output.NewSQLiteSink(p.flags.DBPath, output.RunInfo{
		Dictionary: dictionaryFile,
		Input:      numbersFile,
	})
	if err != nil {
		return nil, err
	}
	p.logger.Info("storing results", slog.String("db", p.flags.DBPath), slog.String("run", db.RunID()))

	return append(sinks, db), nil
}
