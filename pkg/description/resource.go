package description

import "time"

// Resource is the in-memory projection of a media resource and its
// tracks, as produced by the (external) resource-description layer.
//
// Every accessor on Resource and its Media entries is total: it is
// defined for any field value and returns a sentinel (zero value, or
// an "absent" boolean) for missing data rather than panicking. An
// empty string is always treated identically to an absent one; that
// equivalence is normalized here, on ingest, rather than re-derived
// at every call site.
type Resource struct {
	name            string
	mrl             string
	descriptionURI  string
	email           string
	phone           string
	lastChange      time.Time
	durationSeconds float64
	multicastAddr   string
	ttl             string
	privateFields   []SDPField
	media           []*MediaGroup
}

// NewResource builds a Resource. media may be empty (no m= lines will
// be emitted) but is never nil.
func NewResource(name, mrl, descriptionURI, email, phone string, lastChange time.Time,
	durationSeconds float64, multicastAddr, ttl string,
	privateFields []SDPField, media []*MediaGroup,
) *Resource {
	if media == nil {
		media = []*MediaGroup{}
	}
	return &Resource{
		name:            name,
		mrl:             mrl,
		descriptionURI:  descriptionURI,
		email:           email,
		phone:           phone,
		lastChange:      lastChange,
		durationSeconds: durationSeconds,
		multicastAddr:   multicastAddr,
		ttl:             ttl,
		privateFields:   privateFields,
		media:           media,
	}
}

// LastChange returns the resource's last-modification instant, or the
// zero time if unknown.
func (r *Resource) LastChange() time.Time { return r.lastChange }

// Name returns the resource's human title, if present.
func (r *Resource) Name() (string, bool) { return emptyToAbsent(r.name) }

// Mrl returns the resource's media resource locator — the string the
// mediathread layer used to look this resource up — if present. It is
// distinct from DescriptionURI, which is the SDP u= line.
func (r *Resource) Mrl() (string, bool) { return emptyToAbsent(r.mrl) }

// DescriptionURI returns the resource's description URI, if present.
func (r *Resource) DescriptionURI() (string, bool) { return emptyToAbsent(r.descriptionURI) }

// Email returns the resource's contact email, if present.
func (r *Resource) Email() (string, bool) { return emptyToAbsent(r.email) }

// Phone returns the resource's contact phone, if present.
func (r *Resource) Phone() (string, bool) { return emptyToAbsent(r.phone) }

// Multicast returns the resource's multicast address, if present.
func (r *Resource) Multicast() (string, bool) { return emptyToAbsent(r.multicastAddr) }

// TTL returns the resource's multicast TTL, if present.
func (r *Resource) TTL() (string, bool) { return emptyToAbsent(r.ttl) }

// Duration returns the resource's duration in seconds; 0 means
// unknown/live.
func (r *Resource) Duration() float64 { return r.durationSeconds }

// PrivateFields returns the resource-level SDP extension lines, in
// insertion order.
func (r *Resource) PrivateFields() []SDPField { return r.privateFields }

// MediaGroups returns the resource's media groups, in insertion
// order. The order determines the order of m= lines in the emitted
// SDP.
func (r *Resource) MediaGroups() []*MediaGroup { return r.media }
