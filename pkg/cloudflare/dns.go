package cloudflare

// RecordType identifies a DNS record type on the wire. It is a wrapped
// string rather than a closed enumeration so record types introduced by the
// API later still round-trip.
type RecordType string

// Known record types.
const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCAA   RecordType = "CAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeMX    RecordType = "MX"
	RecordTypeNS    RecordType = "NS"
	RecordTypePTR   RecordType = "PTR"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeTXT   RecordType = "TXT"
)

// DNSRecord represents a DNS record within a zone.
type DNSRecord struct {
	Resource

	ZoneID    string     `json:"zone_id,omitempty"   yaml:"zone_id,omitempty"`
	ZoneName  string     `json:"zone_name,omitempty" yaml:"zone_name,omitempty"`
	Type      RecordType `json:"type"                yaml:"type"`
	Name      string     `json:"name"                yaml:"name"`
	Content   string     `json:"content"             yaml:"content"`
	TTL       int        `json:"ttl"                 yaml:"ttl"`
	Priority  *int       `json:"priority,omitempty"  yaml:"priority,omitempty"`
	Proxiable bool       `json:"proxiable"           yaml:"proxiable"`
	Proxied   bool       `json:"proxied"             yaml:"proxied"`
	Comment   string     `json:"comment,omitempty"   yaml:"comment,omitempty"`
	Tags      []string   `json:"tags,omitempty"      yaml:"tags,omitempty"`
}

// DNSRecordCreateRequest is the request body for creating a DNS record.
type DNSRecordCreateRequest struct {
	Type     RecordType       `json:"type"`
	Name     string           `json:"name"`
	Content  string           `json:"content"`
	TTL      int              `json:"ttl,omitempty"`
	Priority Optional[int]    `json:"priority,omitzero"`
	Proxied  Optional[bool]   `json:"proxied,omitzero"`
	Comment  Optional[string] `json:"comment,omitzero"`
	Tags     []string         `json:"tags,omitempty"`
}

// DNSRecordUpdateRequest is the request body for a partial record update.
// Every field is optional: only the fields the caller actually sets appear
// in the serialized body.
type DNSRecordUpdateRequest struct {
	Type     Optional[RecordType] `json:"type,omitzero"`
	Name     Optional[string]     `json:"name,omitzero"`
	Content  Optional[string]     `json:"content,omitzero"`
	TTL      Optional[int]        `json:"ttl,omitzero"`
	Priority Optional[int]        `json:"priority,omitzero"`
	Proxied  Optional[bool]       `json:"proxied,omitzero"`
	Comment  Optional[string]     `json:"comment,omitzero"`
	Tags     Optional[[]string]   `json:"tags,omitzero"`
}

// DNSBatchRequest bundles deletes, patches, and creates into one call.
// Each sub-array is independently optional.
type DNSBatchRequest struct {
	Deletes []DNSBatchDelete         `json:"deletes,omitempty"`
	Patches []DNSBatchPatch          `json:"patches,omitempty"`
	Posts   []DNSRecordCreateRequest `json:"posts,omitempty"`
}

// DNSBatchDelete identifies one record to delete in a batch.
type DNSBatchDelete struct {
	ID string `json:"id"`
}

// DNSBatchPatch identifies one record to patch in a batch.
type DNSBatchPatch struct {
	ID string `json:"id"`

	DNSRecordUpdateRequest
}

// DNSBatchResponse reports the records affected by a batch call.
type DNSBatchResponse struct {
	Deletes []DNSRecord `json:"deletes,omitempty" yaml:"deletes,omitempty"`
	Patches []DNSRecord `json:"patches,omitempty" yaml:"patches,omitempty"`
	Posts   []DNSRecord `json:"posts,omitempty"   yaml:"posts,omitempty"`
}

// DNSImportResult reports the outcome of a zone-file import.
type DNSImportResult struct {
	RecsAdded          int `json:"recs_added"           yaml:"recs_added"`
	TotalRecordsParsed int `json:"total_records_parsed" yaml:"total_records_parsed"`
}
