package policies

// RegionPolicy answers which regions a service is available in. A few
// services only run in a restricted region set; everything else gets the
// full list.
type RegionPolicy struct {
	limited map[string][]string
	all     []string
}

var limitedRegions = []string{
	"us-east-1",
	"us-west-2",
	"eu-west-1",
	"ap-southeast-1",
	"ap-southeast-2",
	"ap-northeast-1",
}

var allRegions = []string{
	"us-east-1",
	"us-west-1",
	"us-west-2",
	"eu-west-1",
	"eu-central-1",
	"ap-southeast-1",
	"ap-southeast-2",
	"ap-northeast-1",
	"sa-east-1",
}

func NewRegionPolicy() RegionPolicy {
	limited := map[string][]string{}
	for _, service := range []string{"redshift", "glacier", "kinesis"} {
		limited[service] = limitedRegions
	}
	return RegionPolicy{limited: limited, all: allRegions}
}

// Regions returns the region list for the given service. Unknown services
// and pattern tokens fall through to the full list.
func (p RegionPolicy) Regions(service string) []string {
	if regions, ok := p.limited[service]; ok {
		return regions
	}
	return p.all
}

// AllRegions returns the unrestricted region list.
func (p RegionPolicy) AllRegions() []string {
	return p.all
}
