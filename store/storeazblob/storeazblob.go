package storeazblob

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"

	"github.com/dtrust-io/go-accumid/store"
)

// DeviceStore persists store.DeviceRecord values as JSON blobs, one per
// device_id, in a single Azure Blob container.
type DeviceStore struct {
	Client    *azblob.Client
	Container string
}

// NewDeviceStore binds a DeviceStore to container, using client for all
// blob operations.
func NewDeviceStore(client *azblob.Client, container string) *DeviceStore {
	return &DeviceStore{Client: client, Container: container}
}

func deviceBlobName(deviceID []byte) string {
	return "devices/" + hex.EncodeToString(deviceID) + ".json"
}

// Put uploads rec. When expectExists is false it sets If-None-Match: *
// so a concurrent duplicate enrollment loses with store.ErrAlreadyExists
// rather than silently overwriting. When expectExists is true the
// upload carries no precondition: it overwrites an existing blob and
// also creates one that is absent, rather than failing with
// store.ErrNotFound.
func (s *DeviceStore) Put(ctx context.Context, rec store.DeviceRecord, expectExists bool) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	opts := &azblob.UploadBufferOptions{}
	if !expectExists {
		opts.AccessConditions = &azblob.AccessConditions{
			ModifiedAccessConditions: &azblob.ModifiedAccessConditions{
				IfNoneMatch: to.Ptr(azcore.ETagAny),
			},
		}
	}

	_, err = s.Client.UploadBuffer(ctx, s.Container, deviceBlobName(rec.DeviceID), data, opts)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobAlreadyExists) || bloberror.HasCode(err, bloberror.ConditionNotMet) {
			return store.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (s *DeviceStore) Get(ctx context.Context, deviceID []byte) (store.DeviceRecord, error) {
	return s.getBlob(ctx, deviceBlobName(deviceID))
}

func (s *DeviceStore) getBlob(ctx context.Context, name string) (store.DeviceRecord, error) {
	resp, err := s.Client.DownloadStream(ctx, s.Container, name, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return store.DeviceRecord{}, store.ErrNotFound
		}
		return store.DeviceRecord{}, err
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return store.DeviceRecord{}, err
	}

	var rec store.DeviceRecord
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		return store.DeviceRecord{}, err
	}
	return rec, nil
}

func (s *DeviceStore) List(ctx context.Context) ([]store.DeviceRecord, error) {
	var out []store.DeviceRecord
	pager := s.Client.NewListBlobsFlatPager(s.Container, &azblob.ListBlobsFlatOptions{
		Prefix: to.Ptr("devices/"),
	})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Segment.BlobItems {
			if item.Name == nil {
				continue
			}
			rec, err := s.getBlob(ctx, *item.Name)
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
		}
	}
	return out, nil
}

// MetadataStore persists the small reserved key set as individual
// blobs keyed by name.
type MetadataStore struct {
	Client    *azblob.Client
	Container string
}

func NewMetadataStore(client *azblob.Client, container string) *MetadataStore {
	return &MetadataStore{Client: client, Container: container}
}

func metaBlobName(key string) string { return "meta/" + key }

func (s *MetadataStore) Get(ctx context.Context, key string) (string, bool, error) {
	resp, err := s.Client.DownloadStream(ctx, s.Container, metaBlobName(key), nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return "", false, err
	}
	return buf.String(), true, nil
}

func (s *MetadataStore) Set(ctx context.Context, key, value string) error {
	_, err := s.Client.UploadBuffer(ctx, s.Container, metaBlobName(key), []byte(value), &azblob.UploadBufferOptions{})
	return err
}
