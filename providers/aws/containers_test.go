package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudtally/cloudtally/awsretry"
	"github.com/cloudtally/cloudtally/types"
)

// eksTestServer serves the EKS list and describe shapes. Describes for
// names in failing come back as ResourceNotFoundException.
func eksTestServer(t *testing.T, clusters []string, failing map[string]bool) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/clusters", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string][]string{"clusters": clusters})
	})
	mux.HandleFunc("/clusters/", func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/clusters/")
		w.Header().Set("Content-Type", "application/json")
		if failing[name] {
			w.Header().Set("X-Amzn-Errortype", "ResourceNotFoundException")
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, `{"message":"No cluster found for name: %s."}`, name)
			return
		}
		fmt.Fprintf(w, `{"cluster":{"name":%q,`+
			`"arn":"arn:aws:eks:us-east-1:123456789012:cluster/%s",`+
			`"status":"ACTIVE","version":"1.29",`+
			`"endpoint":"https://%s.eks.example.com","createdAt":1700000000,`+
			`"resourcesVpcConfig":{"vpcId":"vpc-0abc","endpointPublicAccess":true},`+
			`"tags":{"team":"core"}}}`, name, name, name)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testConnector(endpoint string) *Connector {
	cfg := aws.Config{
		Region:       "us-east-1",
		Credentials:  credentials.NewStaticCredentialsProvider("AKID", "SECRET", ""),
		BaseEndpoint: aws.String(endpoint),
	}
	return NewConnector(cfg).WithRetry(awsretry.New(0, time.Millisecond))
}

func TestDescribeEKSClustersDroppedDescribeDoesNotFailTheRest(t *testing.T) {
	server := eksTestServer(t,
		[]string{"alpha", "bravo", "charlie"},
		map[string]bool{"bravo": true})

	connector := testConnector(server.URL)
	resources, err := connector.DescribeEKSClusters(context.Background(), "us-east-1")

	require.NoError(t, err, "one unresolvable cluster must not fail the listing")
	require.Len(t, resources, 2)
	assert.Equal(t, "alpha", resources[0].ID)
	assert.Equal(t, "charlie", resources[1].ID)
}

func TestDescribeEKSClustersMapsClusterFields(t *testing.T) {
	server := eksTestServer(t, []string{"alpha"}, nil)

	connector := testConnector(server.URL)
	resources, err := connector.DescribeEKSClusters(context.Background(), "us-east-1")

	require.NoError(t, err)
	require.Len(t, resources, 1)

	cluster := resources[0]
	assert.Equal(t, types.TypeEKSCluster, cluster.Type)
	assert.Equal(t, "arn:aws:eks:us-east-1:123456789012:cluster/alpha", cluster.ARN)
	assert.Equal(t, "ACTIVE", cluster.Status)
	assert.Equal(t, "kubernetes", cluster.Metadata.Engine)
	assert.Equal(t, "1.29", cluster.Metadata.EngineVersion)
	assert.Equal(t, "vpc-0abc", cluster.Metadata.VpcID)
	assert.True(t, cluster.Metadata.PubliclyAccessible)
	assert.Equal(t, map[string]string{"team": "core"}, cluster.Tags)
}
