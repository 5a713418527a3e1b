package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"tcvariant/models"
	assemblyId "tcvariant/models/constants/assembly-id"
	"tcvariant/models/constants/chromosome"
	e "tcvariant/models/errors"
	"tcvariant/services/extraction"
	"tcvariant/services/tsv"
	"tcvariant/services/validation"
	"tcvariant/utils"

	"github.com/Jeffail/gabs"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type (
	// Fetcher retrieves the raw annotation object for one variant.
	Fetcher interface {
		Fetch(ctx context.Context, variant string) (*gabs.Container, error)
	}

	AnnotationService struct {
		Config  *models.Config
		Fetcher Fetcher
		RunId   uuid.UUID
		logger  *zap.Logger
	}
)

func NewAnnotationService(cfg *models.Config, fetcher Fetcher, logger *zap.Logger) *AnnotationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	runId := uuid.New()

	return &AnnotationService{
		Config:  cfg,
		Fetcher: fetcher,
		RunId:   runId,
		logger:  logger.With(zap.String("runId", runId.String())),
	}
}

// AnnotateOne annotates a single variant and writes it to the configured
// output file. Any failure aborts before the output file is touched.
func (s *AnnotationService) AnnotateOne(ctx context.Context, variant string) error {
	variant = strings.TrimSpace(variant)
	s.logger.Debug("getting annotation for single variant", zap.String("variant", variant))

	record, err := s.annotate(ctx, variant)
	if err != nil {
		return err
	}

	return s.write([]models.AnnotationRecord{record})
}

// AnnotateFile reads one variant per line from path and annotates them.
func (s *AnnotationService) AnnotateFile(ctx context.Context, path string) error {
	s.logger.Debug("getting annotations for variants in file", zap.String("input", path))

	variants, err := utils.ReadVariantFile(path)
	if err != nil {
		return fmt.Errorf("reading input file %s: %w", path, err)
	}

	return s.AnnotateMany(ctx, variants)
}

// AnnotateMany annotates every non-blank entry of variants. Variants that
// fail validation, retrieval or parsing are logged and skipped; the rows
// that remain are written once, in input order.
func (s *AnnotationService) AnnotateMany(ctx context.Context, variants []string) error {
	var (
		records      = make([]*models.AnnotationRecord, len(variants))
		total        int
		skippedCount int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())

	for i, raw := range variants {
		variant := strings.TrimSpace(raw)
		if variant == "" {
			continue
		}
		total++

		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			record, err := s.annotate(gctx, variant)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				s.logSkip(variant, err)
				atomic.AddInt64(&skippedCount, 1)
				return nil
			}

			records[i] = &record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	annotated := make([]models.AnnotationRecord, 0, len(records))
	for _, record := range records {
		if record != nil {
			annotated = append(annotated, *record)
		}
	}

	s.logger.Info("finished annotating variants",
		zap.Int("total", total),
		zap.Int("annotated", len(annotated)),
		zap.Int64("skipped", skippedCount))

	return s.write(annotated)
}

func (s *AnnotationService) annotate(ctx context.Context, variant string) (models.AnnotationRecord, error) {
	variantId, err := validation.Parse(variant)
	if err != nil {
		return models.AnnotationRecord{}, err
	}
	s.logger.Debug("variant format is valid",
		zap.String("variant", variant),
		zap.String("chromosome", variantId.Chromosome),
		zap.String("assemblyId", string(variantId.AssemblyId)))

	data, err := s.Fetcher.Fetch(ctx, variant)
	if err != nil {
		return models.AnnotationRecord{}, err
	}

	record, err := extraction.Extract(variant, data)
	if err != nil {
		return models.AnnotationRecord{}, err
	}

	if !chromosome.IsValidHumanChromosome(record.SeqRegionName) || record.SeqRegionName != variantId.Chromosome {
		s.logger.Debug("seq_region_name does not match the accession's chromosome",
			zap.String("variant", variant),
			zap.String("seqRegionName", record.SeqRegionName),
			zap.String("accessionChromosome", variantId.Chromosome))
	}

	if assemblyId.CastToAssemblyId(record.AssemblyName) != variantId.AssemblyId {
		s.logger.Debug("assembly_name does not match the accession version",
			zap.String("variant", variant),
			zap.String("assemblyName", record.AssemblyName),
			zap.String("accessionAssemblyId", string(variantId.AssemblyId)))
	}

	return record, nil
}

func (s *AnnotationService) write(records []models.AnnotationRecord) error {
	output := s.Config.Api.Output
	s.logger.Debug("writing output file", zap.String("output", output), zap.Int("rows", len(records)))

	if err := tsv.Write(records, output); err != nil {
		return err
	}

	s.logger.Info("wrote annotations", zap.String("output", output), zap.Int("rows", len(records)))
	return nil
}

func (s *AnnotationService) logSkip(variant string, err error) {
	var (
		validationErr *e.ValidationError
		fetchErr      *e.FetchError
		extractErr    *e.ExtractError
		reason        string
	)
	switch {
	case errors.As(err, &validationErr):
		reason = "variant does not appear to be valid"
	case errors.As(err, &fetchErr):
		reason = "error retrieving data from ensembl"
	case errors.As(err, &extractErr):
		reason = "unable to parse annotation data"
	default:
		reason = "unexpected error"
	}

	s.logger.Warn(reason+"; skipping annotation", zap.String("variant", variant), zap.Error(err))
}

func (s *AnnotationService) concurrency() int {
	if s.Config.Api.Concurrency < 1 {
		return 1
	}
	return s.Config.Api.Concurrency
}
