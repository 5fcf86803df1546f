package cookiejar

import (
	"encoding/json"
	"fmt"
	"time"
)

// jarFormatVersion tags the stable JSON format produced by Serialize/ToJSON,
// so a future incompatible change to the schema can be detected on load.
const jarFormatVersion = "cookiejar@1.0.0"

type serializedCookie struct {
	Key           string      `json:"key"`
	Value         string      `json:"value"`
	Expires       interface{} `json:"expires"`
	MaxAge        interface{} `json:"maxAge"`
	Domain        string      `json:"domain"`
	Path          string      `json:"path"`
	Secure        bool        `json:"secure"`
	HttpOnly      bool        `json:"httpOnly"`
	SameSite      interface{} `json:"sameSite"`
	HostOnly      bool        `json:"hostOnly"`
	PathIsDefault bool        `json:"pathIsDefault"`
	Creation      string      `json:"creation"`
	LastAccessed  string      `json:"lastAccessed"`
	CreationIndex int64       `json:"creationIndex"`
	Extensions    []string    `json:"extensions"`
}

type serializedJar struct {
	Version               string             `json:"version"`
	StoreType             interface{}        `json:"storeType"`
	RejectPublicSuffixes  bool               `json:"rejectPublicSuffixes"`
	EnableLooseMode       bool               `json:"enableLooseMode"`
	AllowSpecialUseDomain bool               `json:"allowSpecialUseDomain"`
	PrefixSecurity        string             `json:"prefixSecurity"`
	Cookies               []serializedCookie `json:"cookies"`
}

func prefixSecurityString(m PrefixSecurityMode) string {
	switch m {
	case PrefixSecurityStrict:
		return "strict"
	case PrefixSecurityUnsafeDisabled:
		return "unsafe-disabled"
	default:
		return "silent"
	}
}

func parsePrefixSecurity(s string) PrefixSecurityMode {
	switch s {
	case "strict":
		return PrefixSecurityStrict
	case "unsafe-disabled":
		return PrefixSecurityUnsafeDisabled
	default:
		return PrefixSecuritySilent
	}
}

func sameSiteToJSON(s SameSite) interface{} {
	switch s {
	case SameSiteLax:
		return "lax"
	case SameSiteStrict:
		return "strict"
	case SameSiteNone:
		return "none"
	default:
		return nil
	}
}

func sameSiteFromJSON(v interface{}) SameSite {
	s, ok := v.(string)
	if !ok {
		return SameSiteUnspecified
	}
	switch s {
	case "lax":
		return SameSiteLax
	case "strict":
		return SameSiteStrict
	case "none":
		return SameSiteNone
	default:
		return SameSiteUnspecified
	}
}

func cookieToSerialized(c *Cookie) serializedCookie {
	var expires interface{}
	if !c.Expires.IsZero() {
		expires = c.Expires.UTC().Format(time.RFC3339Nano)
	}
	var maxAge interface{}
	if c.MaxAge != NoMaxAge {
		maxAge = c.MaxAge
	}
	extensions := c.Extensions
	if extensions == nil {
		extensions = []string{}
	}
	return serializedCookie{
		Key:           c.Key,
		Value:         c.Value,
		Expires:       expires,
		MaxAge:        maxAge,
		Domain:        c.Domain,
		Path:          c.Path,
		Secure:        c.Secure,
		HttpOnly:      c.HttpOnly,
		SameSite:      sameSiteToJSON(c.SameSite),
		HostOnly:      c.HostOnly,
		PathIsDefault: c.PathIsDefault,
		Creation:      c.Creation.UTC().Format(time.RFC3339Nano),
		LastAccessed:  c.LastAccessed.UTC().Format(time.RFC3339Nano),
		CreationIndex: c.CreationIndex,
		Extensions:    extensions,
	}
}

func cookieFromSerialized(sc serializedCookie) (*Cookie, error) {
	c := &Cookie{
		Key:           sc.Key,
		Value:         sc.Value,
		Domain:        sc.Domain,
		Path:          sc.Path,
		Secure:        sc.Secure,
		HttpOnly:      sc.HttpOnly,
		SameSite:      sameSiteFromJSON(sc.SameSite),
		HostOnly:      sc.HostOnly,
		PathIsDefault: sc.PathIsDefault,
		CreationIndex: sc.CreationIndex,
		MaxAge:        NoMaxAge,
		Extensions:    sc.Extensions,
	}

	if sc.Expires != nil {
		if s, ok := sc.Expires.(string); ok && s != "" {
			t, err := time.Parse(time.RFC3339Nano, s)
			if err != nil {
				return nil, fmt.Errorf("cookiejar: deserialize %q: bad expires %q: %w", sc.Key, s, err)
			}
			c.Expires = t
		}
	}
	if sc.MaxAge != nil {
		switch v := sc.MaxAge.(type) {
		case float64:
			c.MaxAge = int64(v)
		}
	}

	creation, err := time.Parse(time.RFC3339Nano, sc.Creation)
	if err != nil {
		return nil, fmt.Errorf("cookiejar: deserialize %q: bad creation %q: %w", sc.Key, sc.Creation, err)
	}
	c.Creation = creation

	lastAccessed, err := time.Parse(time.RFC3339Nano, sc.LastAccessed)
	if err != nil {
		return nil, fmt.Errorf("cookiejar: deserialize %q: bad lastAccessed %q: %w", sc.Key, sc.LastAccessed, err)
	}
	c.LastAccessed = lastAccessed

	return c, nil
}

// ToJSON returns the plain, JSON-marshalable representation of j: its
// configuration plus every stored cookie, each with its timestamps
// rendered as RFC 3339 strings. Serialize is ToJSON followed by
// json.Marshal.
func (j *Jar) ToJSON() (interface{}, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	store := j.storeLocked()
	all := store.AllCookies()
	cookies := make([]serializedCookie, len(all))
	for i, c := range all {
		cookies[i] = cookieToSerialized(c)
	}

	var storeType interface{}
	if _, ok := store.(*MemStore); ok {
		storeType = "MemStore"
	} else if _, ok := store.(*GobStore); ok {
		storeType = "GobStore"
	} else {
		storeType = fmt.Sprintf("%T", store)
	}

	return serializedJar{
		Version:               jarFormatVersion,
		StoreType:             storeType,
		RejectPublicSuffixes:  !j.AllowAllDomains,
		EnableLooseMode:       j.LooseMode,
		AllowSpecialUseDomain: j.AllowSpecialUseDomain,
		PrefixSecurity:        prefixSecurityString(j.PrefixSecurity),
		Cookies:               cookies,
	}, nil
}

// Serialize renders j in the stable JSON jar format.
func (j *Jar) Serialize() ([]byte, error) {
	data, err := j.ToJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(data)
}

// DeserializeJar parses the stable JSON jar format produced by Serialize,
// populating a new Jar backed by store (a fresh MemStore if store is nil).
func DeserializeJar(data []byte, store Store) (*Jar, error) {
	var sj serializedJar
	if err := json.Unmarshal(data, &sj); err != nil {
		return nil, fmt.Errorf("cookiejar: deserialize: %w", err)
	}

	if store == nil {
		store = NewMemStore()
	}
	j := &Jar{
		AllowAllDomains:       !sj.RejectPublicSuffixes,
		LooseMode:             sj.EnableLooseMode,
		AllowSpecialUseDomain: sj.AllowSpecialUseDomain,
		PrefixSecurity:        parsePrefixSecurity(sj.PrefixSecurity),
		store:                 store,
	}

	var maxIndex int64
	for _, sc := range sj.Cookies {
		c, err := cookieFromSerialized(sc)
		if err != nil {
			return nil, err
		}
		store.PutCookie(c)
		if c.CreationIndex > maxIndex {
			maxIndex = c.CreationIndex
		}
	}
	j.nextIndex = maxIndex

	return j, nil
}

// CloneViaSerialize returns a copy of j made by a round trip through
// Serialize and DeserializeJar: the clone shares no mutable state (cookies,
// store) with the original, and carries only the configuration the JSON
// format records (public-suffix rejection, loose mode, special-use domains,
// prefix security).
func (j *Jar) CloneViaSerialize() (*Jar, error) {
	data, err := j.Serialize()
	if err != nil {
		return nil, err
	}
	return DeserializeJar(data, NewMemStore())
}
