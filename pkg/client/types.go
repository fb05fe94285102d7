package client

import "time"

// Environment is a lifecycle stage (e.g. "Library") scoping which
// repository snapshot is addressed within an organization.
type Environment struct {
	// ID is the server-assigned environment identifier.
	ID string `json:"id"`

	// Name is the environment name unique within its organization.
	Name string `json:"name"`

	// OrgName is the owning organization.
	OrgName string `json:"organization"`
}

// Repo is a named content set scoped by organization, product, and
// lifecycle environment.
type Repo struct {
	// ID is the server-assigned repository identifier.
	ID string `json:"id"`

	// Name is the repository name.
	Name string `json:"name"`

	// Label is the ASCII identifier for the repository.
	Label string `json:"label"`

	// OrgName is the owning organization.
	OrgName string `json:"organization"`

	// Product is the product the repository belongs to.
	Product string `json:"product"`

	// Environment is the lifecycle environment name.
	Environment string `json:"environment"`

	// PackageCount is the number of packages in the repository.
	PackageCount int64 `json:"package_count"`

	// Arch is the repository architecture, if any.
	Arch string `json:"arch,omitempty"`

	// URL is the upstream feed URL, if any.
	URL string `json:"url,omitempty"`

	// GPGKeyName is the name of the assigned GPG key, if any.
	GPGKeyName string `json:"gpg_key_name,omitempty"`

	// LastSync is when the repository last synced; nil when never synced.
	LastSync *time.Time `json:"last_sync,omitempty"`

	// Enabled reports whether the repository is enabled.
	Enabled bool `json:"enabled"`
}

// Distribution is installable-tree metadata associated with a
// repository: an OS family/variant/version plus the media file list.
type Distribution struct {
	// ID is the distribution identifier, e.g. "ks-rh-noarch".
	ID string `json:"id"`

	// Description is a human-readable summary.
	Description string `json:"description"`

	// Family is the OS family, e.g. "rhel".
	Family string `json:"family"`

	// Variant is the OS variant within the family.
	Variant string `json:"variant"`

	// Version is the OS version.
	Version string `json:"version"`

	// Files lists the installable media files.
	Files []string `json:"files"`
}

// ServerStatus is the server's self-reported health, returned by Ping.
type ServerStatus struct {
	// Status is "ok" when the server is healthy.
	Status string `json:"status"`

	// Version is the server version string.
	Version string `json:"version"`
}
