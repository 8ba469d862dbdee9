package types

import "time"

// ResourceMetadata holds the service-specific attributes of a resource.
// One struct shared by all collectors; each collector fills only the
// fields its service reports, everything else stays at the zero value.
type ResourceMetadata struct {
	// Placement
	State            string `json:"state,omitempty"`
	AvailabilityZone string `json:"availability_zone,omitempty"`
	VpcID            string `json:"vpc_id,omitempty"`
	SubnetID         string `json:"subnet_id,omitempty"`
	PrivateIP        string `json:"private_ip,omitempty"`
	PublicIP         string `json:"public_ip,omitempty"`

	// Sizing
	InstanceType     string `json:"instance_type,omitempty"`
	InstanceClass    string `json:"instance_class,omitempty"`
	AllocatedStorage int32  `json:"allocated_storage,omitempty"`
	SizeBytes        int64  `json:"size_bytes,omitempty"`
	ItemCount        int64  `json:"item_count,omitempty"`
	MemorySize       int32  `json:"memory_size,omitempty"`
	NodeCount        int    `json:"node_count,omitempty"`
	DesiredCapacity  int32  `json:"desired_capacity,omitempty"`
	MinSize          int32  `json:"min_size,omitempty"`
	MaxSize          int32  `json:"max_size,omitempty"`

	// Security posture
	Encrypted          bool   `json:"encrypted,omitempty"`
	PubliclyAccessible bool   `json:"publicly_accessible,omitempty"`
	MultiAZ            bool   `json:"multi_az,omitempty"`
	KeyState           string `json:"key_state,omitempty"`
	KeyUsage           string `json:"key_usage,omitempty"`

	// Engine / runtime
	Engine        string `json:"engine,omitempty"`
	EngineVersion string `json:"engine_version,omitempty"`
	Runtime       string `json:"runtime,omitempty"`
	Endpoint      string `json:"endpoint,omitempty"`
	Port          int32  `json:"port,omitempty"`

	// Storage specific
	VolumeType   string `json:"volume_type,omitempty"`
	IOPS         int32  `json:"iops,omitempty"`
	IsAttached   bool   `json:"is_attached,omitempty"`
	AttachedTo   string `json:"attached_to,omitempty"`
	StorageClass string `json:"storage_class,omitempty"`
	Versioning   string `json:"versioning,omitempty"`

	// Network specific
	DNSName          string   `json:"dns_name,omitempty"`
	Scheme           string   `json:"scheme,omitempty"`
	LoadBalancerType string   `json:"load_balancer_type,omitempty"`
	SecurityGroups   []string `json:"security_groups,omitempty"`
	CIDRBlock        string   `json:"cidr_block,omitempty"`

	// Service specific odds and ends
	Handler       string `json:"handler,omitempty"`
	CodeSize      int64  `json:"code_size,omitempty"`
	Timeout       int32  `json:"timeout,omitempty"`
	RepositoryURI string `json:"repository_uri,omitempty"`
	ZoneID        string `json:"zone_id,omitempty"`
	RecordCount   int64  `json:"record_count,omitempty"`
	RetentionDays int32  `json:"retention_days,omitempty"`
	PolicyType    string `json:"policy_type,omitempty"`
	RuleSource    string `json:"rule_source,omitempty"`

	// Activity
	LastActivity time.Time `json:"last_activity,omitempty"`
	LastModified string    `json:"last_modified,omitempty"`
}
