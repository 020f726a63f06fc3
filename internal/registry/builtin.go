package registry

import "cloudsweep/internal/types"

var builtinResources = []types.ResourceMeta{
	{
		Service:    "cloudwatch",
		Type:       "alarm",
		EnumOp:     "DescribeAlarms",
		ResultPath: "MetricAlarms",
		ID:         "AlarmName",
		FilterName: "AlarmNames",
		FilterKind: types.FilterKindList,
	},
	{
		Service:    "kinesis",
		Type:       "stream",
		EnumOp:     "ListStreams",
		ResultPath: "StreamNames",
		ID:         "StreamName",
	},
	{
		Service:    "s3",
		Type:       "bucket",
		EnumOp:     "ListBuckets",
		ResultPath: "Buckets",
		ID:         "Name",
	},
	{
		Service:    "iam",
		Type:       "user",
		EnumOp:     "ListUsers",
		ResultPath: "Users",
		ID:         "UserName",
	},
	{
		Service:    "iam",
		Type:       "role",
		EnumOp:     "ListRoles",
		ResultPath: "Roles",
		ID:         "RoleName",
	},
}
