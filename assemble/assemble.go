// Package assemble drives the full isoweave pipeline: it anchors
// dummies, lifts the k-mer graph, attributes evidence, smooths density,
// enumerates suboptimal paths, reconstructs each into an exon sequence,
// and assigns output identifiers.
package assemble

import (
	"context"
	stderrors "errors"
	"math"

	"github.com/pkg/errors"

	"github.com/arborist/isoweave/attribute"
	"github.com/arborist/isoweave/core"
	"github.com/arborist/isoweave/kmer"
	"github.com/arborist/isoweave/pathfinder"
	"github.com/arborist/isoweave/reconstruct"
	"github.com/arborist/isoweave/smooth"
)

// Assemble runs the full pipeline over one strand-specific transcript
// graph and returns its ranked isoforms.
//
// maxKmerVertices bounds K's size; 0 means unbounded, matching
// kmer.Build's own convention.
//
// counter allocates this call's tx_id values; callers share one across
// concurrently assembled loci.
func Assemble(
	g *core.Graph,
	strand core.Strand,
	partialPaths []attribute.PartialPath,
	kmax int,
	fractionMajorPath float64,
	maxPaths int,
	maxKmerVertices int,
	counter *TxCounter,
) ([]PathInfo, error) {
	if err := g.ValidateDAG(context.Background()); err != nil {
		return nil, errors.Wrap(ErrInvalidInput, err.Error())
	}

	if len(partialPaths) == 0 {
		return []PathInfo{}, nil
	}

	maxPathLen := 0
	for _, p := range partialPaths {
		if err := validatePartialPath(g, p); err != nil {
			return nil, err
		}
		if len(p.Path) > maxPathLen {
			maxPathLen = len(p.Path)
		}
	}

	clampedKmax, clampedFraction, clamped := clampParams(kmax, fractionMajorPath)
	if clamped {
		log.Warningf("assemble: clamped parameters (kmax=%d->%d, fraction_major_path=%v->%v)",
			kmax, clampedKmax, fractionMajorPath, clampedFraction)
	}

	k := chooseK(clampedKmax, maxPathLen)

	g.EnsureTSSIDs()

	if _, _, err := g.AnchorDummies(k); err != nil {
		return nil, errors.Wrapf(ErrInvalidInput, "anchor dummies: %v", err)
	}

	kg, err := kmer.Build(g, k, maxKmerVertices)
	if err != nil {
		if stderrors.Is(err, kmer.ErrResourceExhausted) {
			return nil, errors.Wrapf(ErrResourceExhausted, "k=%d: %v", k, err)
		}

		return nil, errors.Wrapf(ErrInvalidInput, "k-mer lift failed: %v", err)
	}

	if err := attribute.Attribute(g, kg, partialPaths, k); err != nil {
		return nil, errors.Wrap(ErrInvalidInput, err.Error())
	}

	if err := smooth.Smooth(context.Background(), kg); err != nil {
		return nil, errors.Wrap(err, "assemble: smoothing failed")
	}

	ranked, err := pathfinder.FindSuboptimal(kg, clampedFraction, maxPaths)
	if err != nil {
		if stderrors.Is(err, pathfinder.ErrUnreachableSink) {
			return []PathInfo{}, nil
		}

		return nil, errors.Wrap(err, "assemble: path finding failed")
	}

	out := make([]PathInfo, 0, len(ranked))
	for _, p := range ranked {
		exons, err := reconstruct.Reconstruct(g, strand, p.Vertices, kg)
		if err != nil {
			return nil, errors.Wrap(err, "assemble: reconstruction failed")
		}
		if len(exons) == 0 {
			continue
		}

		tssID := 0
		if v := g.Vertex(exons[0]); v != nil {
			tssID = v.TSSID
		}

		out = append(out, PathInfo{
			Density: p.Density,
			TSSID:   tssID,
			TxID:    counter.Next(),
			Path:    exons,
		})
	}

	return out, nil
}

// validatePartialPath checks a single partial path's invalid-input
// obligations: a non-negative, non-NaN density, and a sequence that is
// actually a walk in g.
func validatePartialPath(g *core.Graph, p attribute.PartialPath) error {
	if len(p.Path) == 0 {
		return errors.Wrap(ErrInvalidInput, "empty partial path")
	}
	if math.IsNaN(p.Density) || p.Density < 0 {
		return errors.Wrap(ErrInvalidInput, "partial path density must be >= 0 and not NaN")
	}

	for i := 0; i < len(p.Path)-1; i++ {
		found := false
		for _, n := range g.Successors(p.Path[i]) {
			if n == p.Path[i+1] {
				found = true
				break
			}
		}
		if !found {
			return errors.Wrap(ErrInvalidInput, "partial path is not a valid walk in G")
		}
	}

	return nil
}
