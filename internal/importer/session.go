package importer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// defaultChunkSize is the number of lines handed to a parser between
// cancellation checks. Chunking is cooperative scheduling, not concurrency:
// results are identical whether a file is processed chunked or in one pass.
const defaultChunkSize = 2000

// File is one uploaded text blob.
type File struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Result is the reviewed-but-not-committed output of one import session:
// ordered alias and zone records plus the diagnostics audit trail.
type Result struct {
	SessionID   string        `json:"session_id"`
	FabricID    int           `json:"fabric_id"`
	Aliases     []AliasRecord `json:"aliases"`
	Zones       []ZoneRecord  `json:"zones"`
	Diagnostics Diagnostics   `json:"diagnostics"`
}

// Session runs the import pipeline once, sequentially, over one or more
// uploaded files. Every session owns its own record set; nothing is shared
// between sessions. The only suspension points are the three Directory calls,
// each awaited before the dependent stage runs.
type Session struct {
	ID        uuid.UUID
	FabricID  int
	Defaults  ImportDefaults
	ChunkSize int

	dir    Directory
	logger *slog.Logger
}

// NewSession creates a session for one fabric. logger may be nil.
func NewSession(dir Directory, logger *slog.Logger, fabricID int, defaults ImportDefaults) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		ID:        uuid.New(),
		FabricID:  fabricID,
		Defaults:  defaults,
		ChunkSize: defaultChunkSize,
		dir:       dir,
		logger:    logger,
	}
}

// Run executes the full pipeline. The returned error is non-nil only on
// cancellation; collaborator failures degrade to conservative defaults and
// show up as warnings in the diagnostics.
func (s *Session) Run(ctx context.Context, files []File) (*Result, error) {
	result := &Result{SessionID: s.ID.String(), FabricID: s.FabricID}
	if s.FabricID <= 0 {
		// Precondition, not a failure: no fabric selected.
		return result, nil
	}

	// Prefix rules are fetched once and cached for the whole session.
	rules, err := s.dir.WwpnPrefixRules(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		result.Diagnostics.Warnf("prefix rule fetch failed, smart detection will default to init: %v", err)
		rules = nil
	}

	// Stage 1+2: extract sections and parse aliases from every file.
	sections := make([]Sections, len(files))
	var aliases []AliasRecord
	for i, f := range files {
		kind := Classify(f.Content)
		switch kind {
		case KindTechSupport:
			sections[i] = ExtractSections(f.Content)
		case KindAlias:
			sections[i] = Sections{AliasLines: splitLines(f.Content)}
		case KindZone:
			sections[i] = Sections{ZoneLines: splitLines(f.Content)}
		default:
			result.Diagnostics.Warnf("file %s: no switch configuration syntax recognized", f.Name)
			continue
		}

		parser := NewAliasParser(s.FabricID, s.Defaults)
		parser.File = f.Name
		if err := s.feedChunked(ctx, sections[i].AliasLines, parser.Feed); err != nil {
			return nil, err
		}
		parser.Finish()
		aliases = append(aliases, parser.Records()...)
		result.Diagnostics.Merge(parser.Diagnostics())
	}

	// Order is the global tie-break across all files of the session.
	for i := range aliases {
		aliases[i].Order = i
	}

	// Stage 3: parse zones with the complete importing alias pool.
	var zones []ZoneRecord
	for i, f := range files {
		if len(sections[i].ZoneLines) == 0 {
			continue
		}
		parser := NewZoneParser(s.FabricID, s.Defaults, aliases)
		parser.File = f.Name
		if err := s.feedChunked(ctx, sections[i].ZoneLines, parser.Feed); err != nil {
			return nil, err
		}
		parser.Finish()
		zones = append(zones, parser.Records()...)
		result.Diagnostics.Merge(parser.Diagnostics())
	}

	// Stage 4: smart type and use resolution over the merged set.
	ResolveSmartTypes(aliases, s.Defaults, rules)

	// Stage 5: dedup across all files of the session.
	aliases = DedupAliases(aliases, &result.Diagnostics)
	zones = DedupZones(zones, &result.Diagnostics)

	// Stage 6: mark records that already exist on the fabric.
	MarkExisting(ctx, s.dir, aliases, zones, s.FabricID, &result.Diagnostics)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Stage 7: final member resolution against importing + database pools.
	stored, err := s.dir.ExistingAliases(ctx, s.FabricID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		result.Diagnostics.Warnf("existing alias fetch failed, resolving against imported aliases only: %v", err)
		stored = nil
	}
	ResolveZoneMembers(zones, aliases, stored, s.Defaults)

	result.Aliases = aliases
	result.Zones = zones

	s.logger.Info("import session complete",
		"session_id", result.SessionID,
		"fabric_id", s.FabricID,
		"files", len(files),
		"aliases", len(aliases),
		"zones", len(zones),
		"skipped_lines", len(result.Diagnostics.SkippedLines),
		"warnings", len(result.Diagnostics.Warnings),
	)

	return result, nil
}

// feedChunked hands lines to a parser in bounded chunks, checking for
// cancellation only at chunk boundaries so parser state is never torn.
func (s *Session) feedChunked(ctx context.Context, lines []SourceLine, feed func([]SourceLine)) error {
	chunk := s.ChunkSize
	if chunk <= 0 {
		chunk = defaultChunkSize
	}
	for start := 0; start < len(lines); start += chunk {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := start + chunk
		if end > len(lines) {
			end = len(lines)
		}
		feed(lines[start:end])
	}
	return nil
}
