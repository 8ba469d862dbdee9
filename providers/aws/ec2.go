package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/cloudtally/cloudtally/awsretry"
	"github.com/cloudtally/cloudtally/types"
)

// DescribeInstances lists all EC2 instances in the region.
func (c *Connector) DescribeInstances(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.EC2(region)
	paginator := ec2.NewDescribeInstancesPaginator(client, &ec2.DescribeInstancesInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "ec2:DescribeInstances",
			func(ctx context.Context) (*ec2.DescribeInstancesOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				resources = append(resources, c.buildInstanceResource(instance, region))
			}
		}
	}

	return resources, nil
}

func (c *Connector) buildInstanceResource(instance ec2types.Instance, region string) types.Resource {
	tags := convertTags(instance.Tags)

	var az string
	if instance.Placement != nil {
		az = aws.ToString(instance.Placement.AvailabilityZone)
	}

	var state string
	if instance.State != nil {
		state = string(instance.State.Name)
	}

	return types.Resource{
		ID:        aws.ToString(instance.InstanceId),
		Type:      types.TypeEC2Instance,
		Region:    region,
		Name:      types.NameFromTags(tags),
		ARN:       c.arn("ec2", region, "instance", aws.ToString(instance.InstanceId)),
		Status:    state,
		Tags:      tags,
		CreatedAt: toTime(instance.LaunchTime),
		Metadata: types.ResourceMetadata{
			State:              state,
			InstanceType:       string(instance.InstanceType),
			AvailabilityZone:   az,
			VpcID:              aws.ToString(instance.VpcId),
			SubnetID:           aws.ToString(instance.SubnetId),
			PrivateIP:          aws.ToString(instance.PrivateIpAddress),
			PublicIP:           aws.ToString(instance.PublicIpAddress),
			PubliclyAccessible: instance.PublicIpAddress != nil,
		},
	}
}

// DescribeVPCs lists all VPCs in the region.
func (c *Connector) DescribeVPCs(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.EC2(region)
	paginator := ec2.NewDescribeVpcsPaginator(client, &ec2.DescribeVpcsInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "ec2:DescribeVpcs",
			func(ctx context.Context) (*ec2.DescribeVpcsOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, vpc := range page.Vpcs {
			tags := convertTags(vpc.Tags)
			resources = append(resources, types.Resource{
				ID:     aws.ToString(vpc.VpcId),
				Type:   types.TypeVPC,
				Region: region,
				Name:   types.NameFromTags(tags),
				ARN:    c.arn("ec2", region, "vpc", aws.ToString(vpc.VpcId)),
				Status: string(vpc.State),
				Tags:   tags,
				Metadata: types.ResourceMetadata{
					State:     string(vpc.State),
					VpcID:     aws.ToString(vpc.VpcId),
					CIDRBlock: aws.ToString(vpc.CidrBlock),
				},
			})
		}
	}

	return resources, nil
}

// DescribeSubnets lists all subnets in the region.
func (c *Connector) DescribeSubnets(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.EC2(region)
	paginator := ec2.NewDescribeSubnetsPaginator(client, &ec2.DescribeSubnetsInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "ec2:DescribeSubnets",
			func(ctx context.Context) (*ec2.DescribeSubnetsOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, subnet := range page.Subnets {
			tags := convertTags(subnet.Tags)
			resources = append(resources, types.Resource{
				ID:     aws.ToString(subnet.SubnetId),
				Type:   types.TypeSubnet,
				Region: region,
				Name:   types.NameFromTags(tags),
				ARN:    aws.ToString(subnet.SubnetArn),
				Status: string(subnet.State),
				Tags:   tags,
				Metadata: types.ResourceMetadata{
					State:              string(subnet.State),
					VpcID:              aws.ToString(subnet.VpcId),
					SubnetID:           aws.ToString(subnet.SubnetId),
					AvailabilityZone:   aws.ToString(subnet.AvailabilityZone),
					CIDRBlock:          aws.ToString(subnet.CidrBlock),
					PubliclyAccessible: aws.ToBool(subnet.MapPublicIpOnLaunch),
				},
			})
		}
	}

	return resources, nil
}

// DescribeSecurityGroups lists all security groups in the region.
func (c *Connector) DescribeSecurityGroups(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.EC2(region)
	paginator := ec2.NewDescribeSecurityGroupsPaginator(client, &ec2.DescribeSecurityGroupsInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "ec2:DescribeSecurityGroups",
			func(ctx context.Context) (*ec2.DescribeSecurityGroupsOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, sg := range page.SecurityGroups {
			tags := convertTags(sg.Tags)
			open := hasOpenIngress(sg.IpPermissions)
			resources = append(resources, types.Resource{
				ID:     aws.ToString(sg.GroupId),
				Type:   types.TypeSecurityGroup,
				Region: region,
				Name:   aws.ToString(sg.GroupName),
				ARN:    c.arn("ec2", region, "security-group", aws.ToString(sg.GroupId)),
				Status: "available",
				Tags:   tags,
				Metadata: types.ResourceMetadata{
					VpcID:              aws.ToString(sg.VpcId),
					PubliclyAccessible: open,
				},
			})
		}
	}

	return resources, nil
}

// hasOpenIngress reports whether any ingress rule allows 0.0.0.0/0 or ::/0.
func hasOpenIngress(permissions []ec2types.IpPermission) bool {
	for _, perm := range permissions {
		for _, ipRange := range perm.IpRanges {
			if aws.ToString(ipRange.CidrIp) == "0.0.0.0/0" {
				return true
			}
		}
		for _, ipv6Range := range perm.Ipv6Ranges {
			if aws.ToString(ipv6Range.CidrIpv6) == "::/0" {
				return true
			}
		}
	}
	return false
}

// DescribeNATGateways lists all NAT gateways in the region.
func (c *Connector) DescribeNATGateways(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.EC2(region)
	paginator := ec2.NewDescribeNatGatewaysPaginator(client, &ec2.DescribeNatGatewaysInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "ec2:DescribeNatGateways",
			func(ctx context.Context) (*ec2.DescribeNatGatewaysOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, gw := range page.NatGateways {
			tags := convertTags(gw.Tags)
			var publicIP string
			for _, addr := range gw.NatGatewayAddresses {
				if ip := aws.ToString(addr.PublicIp); ip != "" {
					publicIP = ip
					break
				}
			}

			resources = append(resources, types.Resource{
				ID:        aws.ToString(gw.NatGatewayId),
				Type:      types.TypeNATGateway,
				Region:    region,
				Name:      types.NameFromTags(tags),
				ARN:       c.arn("ec2", region, "natgateway", aws.ToString(gw.NatGatewayId)),
				Status:    string(gw.State),
				Tags:      tags,
				CreatedAt: toTime(gw.CreateTime),
				Metadata: types.ResourceMetadata{
					State:              string(gw.State),
					VpcID:              aws.ToString(gw.VpcId),
					SubnetID:           aws.ToString(gw.SubnetId),
					PublicIP:           publicIP,
					PubliclyAccessible: publicIP != "",
				},
			})
		}
	}

	return resources, nil
}

// DescribeVPCEndpoints lists all VPC endpoints in the region.
func (c *Connector) DescribeVPCEndpoints(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.EC2(region)
	paginator := ec2.NewDescribeVpcEndpointsPaginator(client, &ec2.DescribeVpcEndpointsInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "ec2:DescribeVpcEndpoints",
			func(ctx context.Context) (*ec2.DescribeVpcEndpointsOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, endpoint := range page.VpcEndpoints {
			tags := convertTags(endpoint.Tags)
			resources = append(resources, types.Resource{
				ID:        aws.ToString(endpoint.VpcEndpointId),
				Type:      types.TypeVPCEndpoint,
				Region:    region,
				Name:      aws.ToString(endpoint.ServiceName),
				ARN:       c.arn("ec2", region, "vpc-endpoint", aws.ToString(endpoint.VpcEndpointId)),
				Status:    string(endpoint.State),
				Tags:      tags,
				CreatedAt: toTime(endpoint.CreationTimestamp),
				Metadata: types.ResourceMetadata{
					State: string(endpoint.State),
					VpcID: aws.ToString(endpoint.VpcId),
				},
			})
		}
	}

	return resources, nil
}

// DescribeElasticIPs lists all Elastic IP addresses in the region.
// DescribeAddresses is not a paginated API.
func (c *Connector) DescribeElasticIPs(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.EC2(region)

	out, err := awsretry.DoValue(ctx, c.retry, "ec2:DescribeAddresses",
		func(ctx context.Context) (*ec2.DescribeAddressesOutput, error) {
			return client.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{})
		})
	if err != nil {
		return nil, err
	}

	resources := make([]types.Resource, 0, len(out.Addresses))
	for _, addr := range out.Addresses {
		tags := convertTags(addr.Tags)
		status := "unassociated"
		if addr.AssociationId != nil {
			status = "associated"
		}

		resources = append(resources, types.Resource{
			ID:     aws.ToString(addr.AllocationId),
			Type:   types.TypeElasticIP,
			Region: region,
			Name:   types.NameFromTags(tags),
			ARN:    c.arn("ec2", region, "elastic-ip", aws.ToString(addr.AllocationId)),
			Status: status,
			Tags:   tags,
			Metadata: types.ResourceMetadata{
				State:              status,
				PublicIP:           aws.ToString(addr.PublicIp),
				AttachedTo:         aws.ToString(addr.InstanceId),
				IsAttached:         addr.InstanceId != nil,
				PubliclyAccessible: true,
			},
		})
	}

	return resources, nil
}
