package lut

// noteToSVFG holds g(note) = tan(pi * freq(note) / sampleRate) in Q3.12.
// The flat tail clamps the corner frequency near a third of the sample
// rate. Regenerate with: tablegen svfg
var noteToSVFG = Table257{
	2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 4, 4,
	4, 4, 4, 4, 5, 5, 5, 5, 5, 6, 6, 6, 6, 6, 7, 7,
	7, 7, 8, 8, 8, 9, 9, 9, 10, 10, 10, 11, 11, 12, 12, 12,
	13, 13, 14, 14, 15, 16, 16, 17, 17, 18, 19, 19, 20, 21, 22, 23,
	23, 24, 25, 26, 27, 28, 29, 30, 31, 33, 34, 35, 36, 38, 39, 41,
	42, 44, 45, 47, 49, 51, 53, 55, 57, 59, 61, 63, 66, 68, 71, 73,
	76, 79, 82, 85, 88, 92, 95, 99, 102, 106, 110, 114, 119, 123, 128, 133,
	138, 143, 148, 154, 160, 166, 172, 178, 185, 192, 199, 207, 215, 223, 231, 240,
	249, 259, 268, 278, 289, 300, 311, 323, 335, 348, 361, 375, 389, 404, 419, 435,
	451, 468, 486, 505, 524, 544, 565, 586, 609, 632, 656, 681, 707, 735, 763, 792,
	823, 855, 888, 922, 958, 996, 1035, 1076, 1118, 1162, 1209, 1257, 1307, 1360, 1415, 1473,
	1533, 1597, 1663, 1733, 1806, 1883, 1964, 2050, 2140, 2235, 2336, 2444, 2558, 2679, 2808, 2947,
	3095, 3255, 3428, 3614, 3818, 4040, 4284, 4554, 4853, 5189, 5568, 6000, 6499, 7082, 7489, 7489,
	7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489,
	7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489,
	7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489, 7489,
	7489,
}

// noteToOnePoleAlpha holds alpha(note) = exp(-2*pi*f0(note)) in Q0.15.
// Regenerate with: tablegen alpha
var noteToOnePoleAlpha = Table257{
	32733, 32732, 32730, 32729, 32727, 32726, 32724, 32723, 32721, 32719, 32717, 32715, 32713, 32711, 32709, 32707,
	32705, 32702, 32700, 32697, 32695, 32692, 32689, 32686, 32683, 32680, 32676, 32673, 32669, 32666, 32662, 32658,
	32654, 32649, 32645, 32640, 32636, 32631, 32625, 32620, 32615, 32609, 32603, 32597, 32590, 32583, 32576, 32569,
	32562, 32554, 32546, 32538, 32529, 32520, 32511, 32501, 32491, 32481, 32470, 32459, 32447, 32435, 32423, 32410,
	32396, 32383, 32368, 32353, 32338, 32322, 32305, 32288, 32270, 32251, 32232, 32212, 32191, 32169, 32147, 32124,
	32100, 32075, 32049, 32022, 31995, 31966, 31936, 31905, 31873, 31840, 31805, 31770, 31733, 31694, 31655, 31614,
	31571, 31527, 31481, 31433, 31384, 31333, 31280, 31226, 31169, 31110, 31050, 30987, 30922, 30854, 30784, 30712,
	30637, 30560, 30479, 30396, 30311, 30222, 30130, 30035, 29936, 29835, 29729, 29621, 29508, 29392, 29272, 29148,
	29020, 28887, 28750, 28609, 28463, 28313, 28157, 27997, 27832, 27661, 27485, 27304, 27117, 26924, 26726, 26521,
	26311, 26094, 25871, 25642, 25406, 25164, 24915, 24659, 24397, 24127, 23851, 23567, 23276, 22979, 22674, 22361,
	22042, 21715, 21381, 21040, 20692, 20337, 19975, 19606, 19230, 18848, 18460, 18065, 17664, 17258, 16846, 16430,
	16008, 15582, 15152, 14718, 14281, 13841, 13399, 12955, 12510, 12065, 11619, 11174, 10731, 10289, 9850, 9414,
	8982, 8555, 8133, 7717, 7308, 6906, 6513, 6129, 5754, 5389, 5035, 4692, 4361, 4042, 3735, 3442,
	3162, 2895, 2643, 2404, 2178, 1967, 1769, 1585, 1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416,
	1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416,
	1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416, 1416,
	1416,
}

// lfoRateToFreq maps the LFO rate control onto an exponential frequency
// curve, as a Q0.15 phase increment. Regenerate with: tablegen lforate
var lfoRateToFreq = Table257{
	1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4,
	4, 4, 4, 5, 5, 5, 5, 5, 6, 6, 6, 6, 6, 7, 7, 7,
	7, 8, 8, 8, 9, 9, 9, 9, 10, 10, 11, 11, 11, 12, 12, 13,
	13, 14, 14, 15, 15, 16, 16, 17, 17, 18, 19, 19, 20, 21, 22, 22,
	23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 35, 36, 37, 39, 40,
	41, 43, 45, 46, 48, 50, 51, 53, 55, 57, 59, 62, 64, 66, 69, 71,
	74, 76, 79, 82, 85, 88, 91, 95, 98, 102, 106, 109, 114, 118, 122, 126,
	131, 136, 141, 146, 151, 157, 163, 169, 175, 181, 188, 195, 202, 209, 217, 225,
	233, 242, 250, 260, 269, 279, 289, 300, 311, 322, 334, 346, 359, 372, 386, 400,
	414, 430, 445, 462, 479, 496, 514, 533, 553, 573, 594, 616, 638, 662, 686, 711,
	737, 764, 792, 821, 851, 882, 915, 948, 983, 1019, 1056, 1095, 1135, 1177, 1220, 1264,
	1311, 1359, 1409, 1460, 1514, 1569, 1627, 1686, 1748, 1812, 1878, 1947, 2018, 2092, 2169, 2248,
	2331, 2416, 2505, 2596, 2692, 2790, 2892, 2998, 3108, 3222, 3340, 3462, 3589, 3721, 3857, 3998,
	4145, 4297, 4454, 4617, 4786, 4962, 5144, 5332, 5527, 5730, 5940, 6157, 6383, 6617, 6859, 7110,
	7371, 7641, 7921, 8211, 8512, 8823, 9147, 9482, 9829, 10189, 10562, 10949, 11350, 11766, 12197, 12644,
	13107,
}
