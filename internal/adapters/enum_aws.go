package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmespath/go-jmespath"

	"cloudsweep/internal/ports"
	"cloudsweep/internal/types"
)

// AWSEnumerator executes enumeration metadata against the typed service
// clients. Pagination runs behind the yielded stream; response items are
// extracted with the metadata result path, and scalar result lists are
// normalized to single-field records keyed by the id field.
type AWSEnumerator struct{}

func NewAWSEnumerator() AWSEnumerator {
	return AWSEnumerator{}
}

func (AWSEnumerator) Enumerate(ctx context.Context, sess ports.Session, region string, meta types.ResourceMeta, args map[string]any) iter.Seq2[map[string]any, error] {
	return func(yield func(map[string]any, error) bool) {
		s, ok := sess.(*awsSession)
		if !ok {
			yield(nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("session was not opened by the AWS adapter"))
			return
		}
		switch meta.Service + "." + meta.EnumOp {
		case "cloudwatch.DescribeAlarms":
			enumerateAlarms(ctx, s, region, meta, args, yield)
		case "kinesis.ListStreams":
			enumerateStreams(ctx, s, region, meta, args, yield)
		case "s3.ListBuckets":
			enumerateBuckets(ctx, s, region, meta, args, yield)
		case "iam.ListUsers":
			enumerateIAMUsers(ctx, s, region, meta, args, yield)
		case "iam.ListRoles":
			enumerateIAMRoles(ctx, s, region, meta, args, yield)
		default:
			yield(nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("no enumerator for %s.%s", meta.Service, meta.EnumOp)))
		}
	}
}

func enumerateAlarms(ctx context.Context, s *awsSession, region string, meta types.ResourceMeta, args map[string]any, yield func(map[string]any, error) bool) {
	client := cloudwatch.NewFromConfig(s.cfg, func(o *cloudwatch.Options) { o.Region = region })
	input := &cloudwatch.DescribeAlarmsInput{}
	if err := decodeArgs(args, input); err != nil {
		yield(nil, err)
		return
	}
	p := cloudwatch.NewDescribeAlarmsPaginator(client, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			yield(nil, err)
			return
		}
		if !emitPage(yield, page, meta) {
			return
		}
	}
}

func enumerateStreams(ctx context.Context, s *awsSession, region string, meta types.ResourceMeta, args map[string]any, yield func(map[string]any, error) bool) {
	client := kinesis.NewFromConfig(s.cfg, func(o *kinesis.Options) { o.Region = region })
	input := &kinesis.ListStreamsInput{}
	if err := decodeArgs(args, input); err != nil {
		yield(nil, err)
		return
	}
	p := kinesis.NewListStreamsPaginator(client, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			yield(nil, err)
			return
		}
		if !emitPage(yield, page, meta) {
			return
		}
	}
}

func enumerateBuckets(ctx context.Context, s *awsSession, region string, meta types.ResourceMeta, args map[string]any, yield func(map[string]any, error) bool) {
	client := s3.NewFromConfig(s.cfg, func(o *s3.Options) { o.Region = region })
	input := &s3.ListBucketsInput{}
	if err := decodeArgs(args, input); err != nil {
		yield(nil, err)
		return
	}
	out, err := client.ListBuckets(ctx, input)
	if err != nil {
		yield(nil, err)
		return
	}
	emitPage(yield, out, meta)
}

func enumerateIAMUsers(ctx context.Context, s *awsSession, region string, meta types.ResourceMeta, args map[string]any, yield func(map[string]any, error) bool) {
	client := iam.NewFromConfig(s.cfg, func(o *iam.Options) { o.Region = region })
	input := &iam.ListUsersInput{}
	if err := decodeArgs(args, input); err != nil {
		yield(nil, err)
		return
	}
	p := iam.NewListUsersPaginator(client, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			yield(nil, err)
			return
		}
		if !emitPage(yield, page, meta) {
			return
		}
	}
}

func enumerateIAMRoles(ctx context.Context, s *awsSession, region string, meta types.ResourceMeta, args map[string]any, yield func(map[string]any, error) bool) {
	client := iam.NewFromConfig(s.cfg, func(o *iam.Options) { o.Region = region })
	input := &iam.ListRolesInput{}
	if err := decodeArgs(args, input); err != nil {
		yield(nil, err)
		return
	}
	p := iam.NewListRolesPaginator(client, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			yield(nil, err)
			return
		}
		if !emitPage(yield, page, meta) {
			return
		}
	}
}

// decodeArgs applies filter and extra arguments to a typed SDK input struct.
// Argument keys use the SDK field names, so a JSON round-trip carries them
// over uniformly.
func decodeArgs(args map[string]any, input any) error {
	if len(args) == 0 {
		return nil
	}
	raw, err := json.Marshal(args)
	if err == nil {
		err = json.Unmarshal(raw, input)
	}
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid enumeration arguments").
			WithCause(err)
	}
	return nil
}

func emitPage(yield func(map[string]any, error) bool, page any, meta types.ResourceMeta) bool {
	items, err := extractItems(page, meta)
	if err != nil {
		yield(nil, err)
		return false
	}
	for _, item := range items {
		if !yield(item, nil) {
			return false
		}
	}
	return true
}

func extractItems(page any, meta types.ResourceMeta) ([]map[string]any, error) {
	raw, err := json.Marshal(page)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	result, err := jmespath.Search(meta.ResultPath, doc)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid result path %q for %s:%s", meta.ResultPath, meta.Service, meta.Type)).
			WithCause(err)
	}
	if result == nil {
		return nil, nil
	}
	entries, ok := result.([]any)
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("result path %q did not yield a list", meta.ResultPath))
	}
	items := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		switch value := entry.(type) {
		case map[string]any:
			items = append(items, value)
		default:
			items = append(items, map[string]any{meta.ID: fmt.Sprint(value)})
		}
	}
	return items, nil
}
