package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pss-admin/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGallery(f *fixture) *GalleryService {
	svc := NewGalleryService(f.db, f.layout)
	svc.SetClock(func() time.Time { return fixedNow })
	return svc
}

func TestListCamerasDistinct(t *testing.T) {
	f := newFixture(t)
	f.frame(1, 2, "a.jpg", fixedNow)
	f.frame(1, 2, "b.jpg", fixedNow)
	f.frame(1, 1, "c.jpg", fixedNow)
	f.frame(2, 9, "d.jpg", fixedNow)

	cameras, err := newGallery(f).ListCameras(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, cameras)
}

func TestListCamerasEmpty(t *testing.T) {
	f := newFixture(t)

	cameras, err := newGallery(f).ListCameras(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, cameras)
	assert.Empty(t, cameras)
}

func TestListClustersDistinctNonNull(t *testing.T) {
	f := newFixture(t)
	frame := f.frame(1, 2, "a.jpg", fixedNow)
	other := f.frame(1, 3, "b.jpg", fixedNow)
	f.crop(frame.ID, int64Ptr(5), "1.jpg")
	f.crop(frame.ID, int64Ptr(5), "2.jpg")
	f.crop(frame.ID, int64Ptr(7), "3.jpg")
	f.crop(frame.ID, nil, "4.jpg")
	f.crop(other.ID, int64Ptr(8), "5.jpg")

	clusters, err := newGallery(f).ListClusters(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "7"}, clusters)

	clusters, err = newGallery(f).ListClusters(context.Background(), 1, 99)
	require.NoError(t, err)
	assert.Empty(t, clusters)
}

func TestListImagesPagination(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 15; i++ {
		frame := f.frame(1, 2, fmt.Sprintf("f%02d.jpg", i), fixedNow.Add(-time.Duration(i)*time.Hour))
		f.crop(frame.ID, int64Ptr(5), fmt.Sprintf("o%02d.jpg", i))
	}
	svc := newGallery(f)
	ctx := context.Background()

	first, err := svc.ListImages(ctx, 1, 2, 5, dto.ImageListParams{Page: 1, Limit: 10, Period: PeriodAll, Order: OrderNewest})
	require.NoError(t, err)
	assert.Len(t, first, 10)

	second, err := svc.ListImages(ctx, 1, 2, 5, dto.ImageListParams{Page: 2, Limit: 10, Period: PeriodAll, Order: OrderNewest})
	require.NoError(t, err)
	assert.Len(t, second, 5)

	seen := map[int64]bool{}
	for _, img := range append(first, second...) {
		assert.False(t, seen[img.ID], "image %d returned twice", img.ID)
		seen[img.ID] = true
	}
	assert.Len(t, seen, 15)
}

func TestListImagesOrdering(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 5; i++ {
		frame := f.frame(1, 2, fmt.Sprintf("f%d.jpg", i), fixedNow.Add(-time.Duration(i*3)*time.Hour))
		f.crop(frame.ID, int64Ptr(5), fmt.Sprintf("o%d.jpg", i))
	}
	svc := newGallery(f)
	ctx := context.Background()

	newest, err := svc.ListImages(ctx, 1, 2, 5, dto.ImageListParams{Page: 1, Limit: 10, Order: OrderNewest})
	require.NoError(t, err)
	require.Len(t, newest, 5)
	for i := 1; i < len(newest); i++ {
		assert.True(t, newest[i-1].Timestamp.After(newest[i].Timestamp))
	}

	oldest, err := svc.ListImages(ctx, 1, 2, 5, dto.ImageListParams{Page: 1, Limit: 10, Order: OrderOldest})
	require.NoError(t, err)
	require.Len(t, oldest, 5)
	for i := 1; i < len(oldest); i++ {
		assert.True(t, oldest[i-1].Timestamp.Before(oldest[i].Timestamp))
	}
	assert.Equal(t, "o4.jpg", oldest[0].Filename)
	assert.Equal(t, "o0.jpg", newest[0].Filename)
}

func TestListImagesPeriodFilter(t *testing.T) {
	f := newFixture(t)
	recent := f.frame(1, 2, "recent.jpg", fixedNow.Add(-48*time.Hour))
	old := f.frame(1, 2, "old.jpg", fixedNow.AddDate(0, -2, 0))
	f.crop(recent.ID, int64Ptr(5), "recent-crop.jpg")
	f.crop(old.ID, int64Ptr(5), "old-crop.jpg")
	svc := newGallery(f)
	ctx := context.Background()

	month, err := svc.ListImages(ctx, 1, 2, 5, dto.ImageListParams{Page: 1, Limit: 10, Period: PeriodMonth})
	require.NoError(t, err)
	require.Len(t, month, 1)
	assert.Equal(t, "recent-crop.jpg", month[0].Filename)

	all, err := svc.ListImages(ctx, 1, 2, 5, dto.ImageListParams{Page: 1, Limit: 10, Period: PeriodAll})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	day, err := svc.ListImages(ctx, 1, 2, 5, dto.ImageListParams{Page: 1, Limit: 10, Period: PeriodDay})
	require.NoError(t, err)
	assert.Empty(t, day)

	unknown, err := svc.ListImages(ctx, 1, 2, 5, dto.ImageListParams{Page: 1, Limit: 10, Period: "3h"})
	require.NoError(t, err)
	assert.Len(t, unknown, 2)
}

func TestListImagesPeriodInStoreTimezone(t *testing.T) {
	f := newFixture(t)
	tokyo := time.FixedZone("JST", 9*60*60)
	inside := f.frame(1, 2, "inside.jpg", fixedNow.Add(-23*time.Hour).In(tokyo))
	outside := f.frame(1, 2, "outside.jpg", fixedNow.Add(-25*time.Hour).In(tokyo))
	f.crop(inside.ID, int64Ptr(5), "inside-crop.jpg")
	f.crop(outside.ID, int64Ptr(5), "outside-crop.jpg")
	svc := newGallery(f)
	svc.SetLocation(tokyo)

	day, err := svc.ListImages(context.Background(), 1, 2, 5, dto.ImageListParams{Page: 1, Limit: 10, Period: PeriodDay})
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, "inside-crop.jpg", day[0].Filename)
}

func TestListImagesRoundTrip(t *testing.T) {
	f := newFixture(t)
	frame := f.frame(1, 2, "f.jpg", fixedNow)
	crop := f.crop(frame.ID, int64Ptr(7), "o.jpg")

	images, err := newGallery(f).ListImages(context.Background(), 1, 2, 7, dto.ImageListParams{Page: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, images, 1)

	img := images[0]
	assert.Equal(t, crop.ID, img.ID)
	assert.Equal(t, "/images/Results/camera0/ResNet50/class_7/o.jpg", img.ObjectImage)
	assert.Equal(t, "/images/detection_result/0923/image0/filter/f.jpg", img.OriginalImage)
	assert.Equal(t, int64(2), img.CameraID)
	require.NotNil(t, img.ClassID)
	assert.Equal(t, int64(7), *img.ClassID)
	assert.Equal(t, "o.jpg", img.Filename)
	assert.Equal(t, "f.jpg", img.OriginalFilename)
	assert.True(t, fixedNow.Equal(img.Timestamp))
}

func TestListImagesScopedToProjectCameraAndCluster(t *testing.T) {
	f := newFixture(t)
	match := f.frame(1, 2, "m.jpg", fixedNow)
	otherProject := f.frame(2, 2, "p.jpg", fixedNow)
	otherCamera := f.frame(1, 3, "c.jpg", fixedNow)
	f.crop(match.ID, int64Ptr(5), "keep.jpg")
	f.crop(match.ID, int64Ptr(6), "other-cluster.jpg")
	f.crop(otherProject.ID, int64Ptr(5), "other-project.jpg")
	f.crop(otherCamera.ID, int64Ptr(5), "other-camera.jpg")

	images, err := newGallery(f).ListImages(context.Background(), 1, 2, 5, dto.ImageListParams{})
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "keep.jpg", images[0].Filename)
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC)

	assert.Nil(t, PeriodStart(PeriodAll, now))
	assert.Nil(t, PeriodStart("bogus", now))
	assert.Equal(t, now.Add(-24*time.Hour), *PeriodStart(PeriodDay, now))
	assert.Equal(t, now.Add(-7*24*time.Hour), *PeriodStart(PeriodWeek, now))
	assert.Equal(t, now.AddDate(0, -1, 0), *PeriodStart(PeriodMonth, now))
	assert.Equal(t, now.AddDate(0, -6, 0), *PeriodStart(PeriodHalfYear, now))
	assert.Equal(t, time.Date(2023, 3, 31, 10, 0, 0, 0, time.UTC), *PeriodStart(PeriodYear, now))
}

func TestGalleryQueriesReportDatabaseErrors(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.db.Exec("DROP TABLE moving_objects").Error)
	svc := newGallery(f)
	ctx := context.Background()

	_, err := svc.ListClusters(ctx, 1, 2)
	assert.ErrorIs(t, err, ErrDatabase)

	_, err = svc.ListImages(ctx, 1, 2, 5, dto.ImageListParams{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, ErrDatabase)

	// Cameras only read frames
	cameras, err := svc.ListCameras(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cameras)
}
