package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
)

// kmeansSeed fixes the random source so repeated extractions of the same
// image produce the same palette.
const kmeansSeed = 42

// KMeansExtractor implements colour extraction using k-means clustering.
type KMeansExtractor struct {
	maxIterations    int
	convergence      float64
	maxSamples       int
	filterBackground bool
}

// NewKMeansExtractor creates a new KMeansExtractor with default settings.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations:    20,
		convergence:      2.0,
		maxSamples:       2500,
		filterBackground: true,
	}
}

// Extract extracts colours from an image using k-means clustering.
// The returned palette is ordered by cluster population descending, so the
// first colour is the dominant one. When the image has fewer distinct
// colours than requested, all distinct colours are returned instead.
func (e *KMeansExtractor) Extract(img image.Image, count int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if count > 256 {
		return nil, fmt.Errorf("colour count too large: %d (maximum: 256)", count)
	}

	pixels := e.samplePixels(img)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	// Collect distinct colours to handle degenerate k.
	unique := make([]RGB, 0, len(pixels))
	seen := make(map[RGB]bool)
	for _, p := range pixels {
		if !seen[p] {
			unique = append(unique, p)
			seen[p] = true
		}
	}

	if count >= len(unique) {
		return e.weightedFromCounts(pixels, unique), nil
	}

	centroids, weights := e.kmeans(pixels, count)

	colours := make([]RGB, len(centroids))
	for i, c := range centroids {
		colours[i] = RGB{
			R: uint8(math.Round(clampChannel(c.R))),
			G: uint8(math.Round(clampChannel(c.G))),
			B: uint8(math.Round(clampChannel(c.B))),
		}
	}

	return NewPaletteWithWeights(colours, weights), nil
}

// weightedFromCounts builds a palette directly from pixel frequencies when
// clustering is unnecessary.
func (e *KMeansExtractor) weightedFromCounts(pixels []RGB, unique []RGB) *Palette {
	counts := make(map[RGB]int, len(unique))
	for _, p := range pixels {
		counts[p]++
	}
	weights := make([]float64, len(unique))
	total := float64(len(pixels))
	for i, c := range unique {
		weights[i] = float64(counts[c]) / total
	}
	return NewPaletteWithWeights(unique, weights)
}

func clampChannel(v float64) float64 {
	return math.Max(0, math.Min(255, v))
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points in RGB space.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// samplePixels samples pixels from the image on a grid. Near-black and
// near-white pixels are skipped when filterBackground is enabled, since
// product photos tend to have plain backgrounds; if that would discard
// everything the unfiltered sample is used instead.
func (e *KMeansExtractor) samplePixels(img image.Image) []RGB {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	totalPixels := width * height

	step := 1
	if totalPixels > e.maxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(e.maxSamples))), 1)
	}

	all := make([]RGB, 0, e.maxSamples)
	kept := make([]RGB, 0, e.maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			rgb := ToRGB(img.At(x, y))
			all = append(all, rgb)
			if e.filterBackground {
				brightness := (float64(rgb.R) + float64(rgb.G) + float64(rgb.B)) / 3.0
				if brightness <= 30 || brightness >= 225 {
					continue
				}
			}
			kept = append(kept, rgb)
			if len(all) >= e.maxSamples {
				break
			}
		}
		if len(all) >= e.maxSamples {
			break
		}
	}

	if len(kept) == 0 {
		return all
	}
	return kept
}

// kmeans performs k-means clustering on the pixel data.
// Returns centroids and their weights (relative cluster sizes).
func (e *KMeansExtractor) kmeans(pixels []RGB, k int) ([]point3D, []float64) {
	rng := rand.New(rand.NewSource(kmeansSeed))

	points := make([]point3D, len(pixels))
	for i, rgb := range pixels {
		points[i] = point3D{
			R: float64(rgb.R),
			G: float64(rgb.G),
			B: float64(rgb.B),
		}
	}

	centroids := initializeCentroidsKMeansPlusPlus(rng, points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		changed := 0
		for i, point := range points {
			nearest := findNearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// Fewer than 1% reassignments counts as converged.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		newCentroids := recalculateCentroids(rng, points, assignments, k)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		avgMovement := totalMovement / float64(k)

		centroids = newCentroids

		if avgMovement < e.convergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, assignment := range assignments {
		weights[assignment]++
	}

	totalPixels := float64(len(assignments))
	for i := range weights {
		weights[i] /= totalPixels
	}

	return centroids, weights
}

// initializeCentroidsKMeansPlusPlus initializes centroids using the
// k-means++ algorithm, which spreads initial centroids apart.
func initializeCentroidsKMeansPlusPlus(rng *rand.Rand, points []point3D, k int) []point3D {
	if len(points) == 0 || k == 0 {
		return []point3D{}
	}

	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		totalDistance := 0.0

		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				dist := point.distance(centroid)
				if dist < minDist {
					minDist = dist
				}
			}
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		if totalDistance == 0 {
			// Remaining points coincide with existing centroids.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{
				R: last.R + 0.1,
				G: last.G + 0.1,
				B: last.B + 0.1,
			})
			continue
		}

		target := rng.Float64() * totalDistance
		cumulative := 0.0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// findNearestCentroid finds the index of the nearest centroid to a point.
func findNearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0

	for i, centroid := range centroids {
		dist := point.distance(centroid)
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}

// recalculateCentroids recalculates centroid positions from assigned points.
func recalculateCentroids(rng *rand.Rand, points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)

	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].R += point.R
		sums[cluster].G += point.G
		sums[cluster].B += point.B
		counts[cluster]++
	}

	centroids := make([]point3D, k)
	for i := range k {
		if counts[i] > 0 {
			centroids[i] = point3D{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			// Empty cluster - reinitialize randomly.
			centroids[i] = points[rng.Intn(len(points))]
		}
	}

	return centroids
}
