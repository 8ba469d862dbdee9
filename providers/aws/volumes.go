package aws

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/cloudtally/cloudtally/awsretry"
	"github.com/cloudtally/cloudtally/types"
)

// DescribeVolumes lists all EBS volumes in the region.
func (c *Connector) DescribeVolumes(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.EC2(region)
	paginator := ec2.NewDescribeVolumesPaginator(client, &ec2.DescribeVolumesInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "ec2:DescribeVolumes",
			func(ctx context.Context) (*ec2.DescribeVolumesOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, volume := range page.Volumes {
			tags := convertTags(volume.Tags)

			var attachedTo string
			for _, attachment := range volume.Attachments {
				if id := aws.ToString(attachment.InstanceId); id != "" {
					attachedTo = id
					break
				}
			}

			resources = append(resources, types.Resource{
				ID:        aws.ToString(volume.VolumeId),
				Type:      types.TypeEBSVolume,
				Region:    region,
				Name:      types.NameFromTags(tags),
				ARN:       c.arn("ec2", region, "volume", aws.ToString(volume.VolumeId)),
				Status:    string(volume.State),
				Tags:      tags,
				CreatedAt: toTime(volume.CreateTime),
				Metadata: types.ResourceMetadata{
					State:            string(volume.State),
					AllocatedStorage: aws.ToInt32(volume.Size),
					VolumeType:       string(volume.VolumeType),
					IOPS:             aws.ToInt32(volume.Iops),
					Encrypted:        aws.ToBool(volume.Encrypted),
					AvailabilityZone: aws.ToString(volume.AvailabilityZone),
					IsAttached:       attachedTo != "",
					AttachedTo:       attachedTo,
				},
			})
		}
	}

	return resources, nil
}

// DescribeSnapshots lists EBS snapshots owned by this account.
func (c *Connector) DescribeSnapshots(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.EC2(region)
	paginator := ec2.NewDescribeSnapshotsPaginator(client, &ec2.DescribeSnapshotsInput{
		OwnerIds: []string{"self"},
	})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "ec2:DescribeSnapshots",
			func(ctx context.Context) (*ec2.DescribeSnapshotsOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, snapshot := range page.Snapshots {
			tags := convertTags(snapshot.Tags)
			resources = append(resources, types.Resource{
				ID:        aws.ToString(snapshot.SnapshotId),
				Type:      types.TypeEBSSnapshot,
				Region:    region,
				Name:      types.NameFromTags(tags),
				ARN:       c.arn("ec2", region, "snapshot", aws.ToString(snapshot.SnapshotId)),
				Status:    string(snapshot.State),
				Tags:      tags,
				CreatedAt: toTime(snapshot.StartTime),
				Metadata: types.ResourceMetadata{
					State:            string(snapshot.State),
					AllocatedStorage: aws.ToInt32(snapshot.VolumeSize),
					Encrypted:        aws.ToBool(snapshot.Encrypted),
					AttachedTo:       aws.ToString(snapshot.VolumeId),
				},
			})
		}
	}

	return resources, nil
}

// DescribeImages lists AMIs owned by this account.
func (c *Connector) DescribeImages(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.EC2(region)
	paginator := ec2.NewDescribeImagesPaginator(client, &ec2.DescribeImagesInput{
		Owners: []string{"self"},
	})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "ec2:DescribeImages",
			func(ctx context.Context) (*ec2.DescribeImagesOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, image := range page.Images {
			tags := convertTags(image.Tags)
			name := aws.ToString(image.Name)
			if name == "" {
				name = types.NameFromTags(tags)
			}

			// CreationDate is an RFC3339 string, not a timestamp
			var created time.Time
			if t, perr := time.Parse(time.RFC3339, aws.ToString(image.CreationDate)); perr == nil {
				created = t
			}

			resources = append(resources, types.Resource{
				ID:        aws.ToString(image.ImageId),
				Type:      types.TypeAMI,
				Region:    region,
				Name:      name,
				ARN:       c.arn("ec2", region, "image", aws.ToString(image.ImageId)),
				Status:    string(image.State),
				Tags:      tags,
				CreatedAt: created,
				Metadata: types.ResourceMetadata{
					State:              string(image.State),
					PubliclyAccessible: aws.ToBool(image.Public),
					LastModified:       aws.ToString(image.CreationDate),
				},
			})
		}
	}

	return resources, nil
}
