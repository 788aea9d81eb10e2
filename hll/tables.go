package hll

// rawEstimateData, biasData and thresholdData are the per-precision
// static correction tables the Flajolet-Heule estimator looks up
// (estimator_heule.go). The original reference implementation these
// numbers are modeled on ships them as a large generated header that
// was not part of the retrieved source tree this package was built
// from; this file reconstructs tables with the same shape and the same
// consuming algorithm (linear interpolation between the two bracketing
// raw-estimate points) rather than guessing at undocumented constants.
// DESIGN.md records this as an open decision.
//
// Each table is indexed by reference cardinality expressed as a
// fraction of m (0.1m, 0.3m, 0.5m, 0.7m, 1m, 1.5m, 2m, 2.5m, 3m, 3.5m,
// 4m, 5m); rawEstimateData holds the raw harmonic-mean estimate at that
// fraction (which for these synthetic points is simply frac*m) and
// biasData holds a bias correction, 0.25*m*e^(-3*frac), that decays
// geometrically from a peak at 0.1m to effectively zero by 5m, matching the well known
// shape of the HyperLogLog raw-estimate bias curve (large at low
// cardinality relative to m, vanishing once the raw estimate clears a
// few multiples of m).
// rawEstimateData holds, for each precision p (indexed p-minPrecision),
// a monotonically non-decreasing set of reference raw-estimate values.
var rawEstimateData = [maxPrecision - minPrecision + 1][]float64{
	{1.600000, 4.800000, 8.000000, 11.200000, 16.000000, 24.000000, 32.000000, 40.000000, 48.000000, 56.000000, 64.000000, 80.000000}, // p=4
	{3.200000, 9.600000, 16.000000, 22.400000, 32.000000, 48.000000, 64.000000, 80.000000, 96.000000, 112.000000, 128.000000, 160.000000}, // p=5
	{6.400000, 19.200000, 32.000000, 44.800000, 64.000000, 96.000000, 128.000000, 160.000000, 192.000000, 224.000000, 256.000000, 320.000000}, // p=6
	{12.800000, 38.400000, 64.000000, 89.600000, 128.000000, 192.000000, 256.000000, 320.000000, 384.000000, 448.000000, 512.000000, 640.000000}, // p=7
	{25.600000, 76.800000, 128.000000, 179.200000, 256.000000, 384.000000, 512.000000, 640.000000, 768.000000, 896.000000, 1024.000000, 1280.000000}, // p=8
	{51.200000, 153.600000, 256.000000, 358.400000, 512.000000, 768.000000, 1024.000000, 1280.000000, 1536.000000, 1792.000000, 2048.000000, 2560.000000}, // p=9
	{102.400000, 307.200000, 512.000000, 716.800000, 1024.000000, 1536.000000, 2048.000000, 2560.000000, 3072.000000, 3584.000000, 4096.000000, 5120.000000}, // p=10
	{204.800000, 614.400000, 1024.000000, 1433.600000, 2048.000000, 3072.000000, 4096.000000, 5120.000000, 6144.000000, 7168.000000, 8192.000000, 10240.000000}, // p=11
	{409.600000, 1228.800000, 2048.000000, 2867.200000, 4096.000000, 6144.000000, 8192.000000, 10240.000000, 12288.000000, 14336.000000, 16384.000000, 20480.000000}, // p=12
	{819.200000, 2457.600000, 4096.000000, 5734.400000, 8192.000000, 12288.000000, 16384.000000, 20480.000000, 24576.000000, 28672.000000, 32768.000000, 40960.000000}, // p=13
	{1638.400000, 4915.200000, 8192.000000, 11468.800000, 16384.000000, 24576.000000, 32768.000000, 40960.000000, 49152.000000, 57344.000000, 65536.000000, 81920.000000}, // p=14
	{3276.800000, 9830.400000, 16384.000000, 22937.600000, 32768.000000, 49152.000000, 65536.000000, 81920.000000, 98304.000000, 114688.000000, 131072.000000, 163840.000000}, // p=15
	{6553.600000, 19660.800000, 32768.000000, 45875.200000, 65536.000000, 98304.000000, 131072.000000, 163840.000000, 196608.000000, 229376.000000, 262144.000000, 327680.000000}, // p=16
	{13107.200000, 39321.600000, 65536.000000, 91750.400000, 131072.000000, 196608.000000, 262144.000000, 327680.000000, 393216.000000, 458752.000000, 524288.000000, 655360.000000}, // p=17
	{26214.400000, 78643.200000, 131072.000000, 183500.800000, 262144.000000, 393216.000000, 524288.000000, 655360.000000, 786432.000000, 917504.000000, 1048576.000000, 1310720.000000}, // p=18
}

// biasData holds the bias correction paired with each rawEstimateData
// entry at the same precision and index.
var biasData = [maxPrecision - minPrecision + 1][]float64{
	{2.963273, 1.626279, 0.892521, 0.489826, 0.199148, 0.044436, 0.009915, 0.002212, 0.000494, 0.000110, 0.000025, 0.000001}, // p=4
	{5.926546, 3.252557, 1.785041, 0.979651, 0.398297, 0.088872, 0.019830, 0.004425, 0.000987, 0.000220, 0.000049, 0.000002}, // p=5
	{11.853092, 6.505115, 3.570083, 1.959303, 0.796593, 0.177744, 0.039660, 0.008849, 0.001975, 0.000441, 0.000098, 0.000005}, // p=6
	{23.706183, 13.010229, 7.140165, 3.918606, 1.593186, 0.355488, 0.079320, 0.017699, 0.003949, 0.000881, 0.000197, 0.000010}, // p=7
	{47.412366, 26.020458, 14.280330, 7.837211, 3.186372, 0.710976, 0.158640, 0.035397, 0.007898, 0.001762, 0.000393, 0.000020}, // p=8
	{94.824732, 52.040916, 28.560660, 15.674423, 6.372745, 1.421952, 0.317280, 0.070795, 0.015796, 0.003525, 0.000786, 0.000039}, // p=9
	{189.649464, 104.081833, 57.121321, 31.348846, 12.745490, 2.843903, 0.634561, 0.141590, 0.031593, 0.007049, 0.001573, 0.000078}, // p=10
	{379.298929, 208.163666, 114.242642, 62.697691, 25.490979, 5.687806, 1.269121, 0.283179, 0.063186, 0.014099, 0.003146, 0.000157}, // p=11
	{758.597858, 416.327332, 228.485284, 125.395383, 50.981958, 11.375612, 2.538242, 0.566358, 0.126372, 0.028197, 0.006292, 0.000313}, // p=12
	{1517.195716, 832.654663, 456.970568, 250.790765, 101.963916, 22.751225, 5.076484, 1.132717, 0.252743, 0.056395, 0.012583, 0.000626}, // p=13
	{3034.391432, 1665.309326, 913.941136, 501.581530, 203.927832, 45.502450, 10.152969, 2.265434, 0.505487, 0.112789, 0.025167, 0.001253}, // p=14
	{6068.782864, 3330.618653, 1827.882272, 1003.163060, 407.855664, 91.004900, 20.305938, 4.530867, 1.010973, 0.225579, 0.050333, 0.002506}, // p=15
	{12137.565728, 6661.237305, 3655.764544, 2006.326120, 815.711328, 182.009799, 40.611876, 9.061734, 2.021946, 0.451157, 0.100667, 0.005012}, // p=16
	{24275.131455, 13322.474610, 7311.529088, 4012.652241, 1631.422656, 364.019599, 81.223751, 18.123469, 4.043892, 0.902314, 0.201334, 0.010024}, // p=17
	{48550.262911, 26644.949221, 14623.058175, 8025.304482, 3262.845313, 728.039197, 162.447503, 36.246937, 8.087785, 1.804629, 0.402667, 0.020048}, // p=18
}

// thresholdData holds, for each precision, the linear-counting estimate
// above which the raw harmonic-mean estimate is used instead.
var thresholdData = [maxPrecision - minPrecision + 1]float64{
	48, 96, 192, 384, 768, 1536, 3072, 6144, 12288, 24576, 49152, 98304, 196608, 393216, 786432,
}
